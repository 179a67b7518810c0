package api

// Service is the backend surface the eligibility form depends on.
// *Client implements it; tests substitute fakes.
type Service interface {
	ListDataspaces() ([]Dataspace, error)
	SearchSegments(searchTerm, dataspaceID string) ([]Segment, error)
	CreateSegmentInclusion(input SegmentLinkInput) (*WriteResult, error)
	CreateSegmentExclusion(input SegmentLinkInput) (*WriteResult, error)
}

var _ Service = (*Client)(nil)
