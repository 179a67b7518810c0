package api

// ListDataspaces returns every dataspace visible to the caller, in backend order.
func (c *Client) ListDataspaces() ([]Dataspace, error) {
	data, err := c.get("/api/dataspaces")
	if err != nil {
		return nil, err
	}
	return decodeList[Dataspace](data)
}

// DataspaceName returns the display name for id, or "" when absent.
// The first match wins.
func DataspaceName(items []Dataspace, id string) string {
	for _, ds := range items {
		if ds.ID == id {
			return ds.Name
		}
	}
	return ""
}
