package document

import "github.com/google/uuid"

// GroupElements links the given elements under a fresh shared group tag and
// returns it. Fewer than two resolvable ids is a no-op returning "".
// Elements already in another group are re-tagged; their former group keeps
// its remaining members (singleton leftovers are tolerated, matching the
// editor's historical behavior).
func (c *Catalog) GroupElements(page int, ids []string) string {
	p := c.Page(page)
	if p == nil {
		return ""
	}

	var members []int
	for _, id := range ids {
		if i := p.IndexOf(id); i >= 0 {
			members = append(members, i)
		}
	}
	if len(members) < 2 {
		return ""
	}

	gid := uuid.NewString()
	for _, i := range members {
		p.Elements[i].GroupID = gid
	}
	c.touch()
	return gid
}

// Ungroup clears the group tag from every member of the given group.
func (c *Catalog) Ungroup(page int, groupID string) bool {
	p := c.Page(page)
	if p == nil || groupID == "" {
		return false
	}
	members := p.GroupMembers(groupID)
	if len(members) == 0 {
		return false
	}
	for _, i := range members {
		p.Elements[i].GroupID = ""
	}
	c.touch()
	return true
}

// ResolveGroup expands an element id to the full id set it selects as:
// the element's whole group when it has one, otherwise just the element.
// Unknown ids resolve to nil.
func (p *Page) ResolveGroup(id string) []string {
	el := p.Element(id)
	if el == nil {
		return nil
	}
	if el.GroupID == "" {
		return []string{id}
	}
	var ids []string
	for _, i := range p.GroupMembers(el.GroupID) {
		ids = append(ids, p.Elements[i].ID)
	}
	return ids
}
