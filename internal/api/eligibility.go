package api

// --- Eligibility Methods ---

// CreateSegmentInclusion links a segment to an offer as an inclusion rule.
func (c *Client) CreateSegmentInclusion(input SegmentLinkInput) (*WriteResult, error) {
	data, err := c.post("/api/segment-inclusions", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[WriteResult](data)
}

// CreateSegmentExclusion links a segment to an offer as an exclusion rule.
func (c *Client) CreateSegmentExclusion(input SegmentLinkInput) (*WriteResult, error) {
	data, err := c.post("/api/segment-exclusions", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[WriteResult](data)
}
