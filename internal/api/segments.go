package api

// SearchSegments runs a text search for market segments within a dataspace.
func (c *Client) SearchSegments(searchTerm, dataspaceID string) ([]Segment, error) {
	data, err := c.get(buildQuery("/api/segments", QueryParams{
		"search_term":  searchTerm,
		"dataspace_id": dataspaceID,
	}))
	if err != nil {
		return nil, err
	}
	return decodeList[Segment](data)
}
