package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
)

func TestCommandsNotLoggedInError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, tc := range []struct {
		name string
		run  func() error
	}{
		{"dataspaces", func() error { _, err := execute(DataspacesCmd()); return err }},
		{"segments", func() error { _, err := execute(SegmentsCmd(), "vip"); return err }},
		{"include", func() error {
			_, err := execute(IncludeCmd(), "--offer", "o1", "--dataspace", "ds1", "--segment", "seg1")
			return err
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not logged in")
		})
	}
}

func TestDataspacesCmdPrintsRows(t *testing.T) {
	srv, _ := newBackend(t)
	loginAs(t, srv.URL)

	out, err := execute(DataspacesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "ds1  EU")
	assert.Contains(t, out, "ds2  US")
}

func TestDataspacesCmdReadsConfigPath(t *testing.T) {
	srv, _ := newBackend(t)
	useConfigFile(t, srv.URL)

	out, err := execute(DataspacesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "ds1  EU")
}

func TestSegmentsCmdPrintsMatches(t *testing.T) {
	srv, _ := newBackend(t)
	loginAs(t, srv.URL)

	out, err := execute(SegmentsCmd(), "vip", "--dataspace", "ds1")
	require.NoError(t, err)
	assert.Contains(t, out, "seg1  VIP  (Top buyers)")
}

func TestSegmentsCmdRequiresTerm(t *testing.T) {
	_, err := execute(SegmentsCmd())
	assert.Error(t, err)
}

func TestIncludeCmdResolvesNames(t *testing.T) {
	srv, b := newBackend(t)
	loginAs(t, srv.URL)

	out, err := execute(IncludeCmd(), "--offer", "o1", "--dataspace", "ds1", "--segment", "seg1")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS: linked")

	require.Len(t, b.writes["/api/segment-inclusions"], 1)
	assert.Equal(t, map[string]string{
		"offer_id":       "o1",
		"dataspace_name": "EU",
		"segment_id":     "seg1",
		"segment_name":   "VIP",
	}, b.writes["/api/segment-inclusions"][0])
	assert.Empty(t, b.writes["/api/segment-exclusions"])
}

func TestExcludeCmdFailResponseExitsNonZero(t *testing.T) {
	srv, b := newBackend(t)
	b.response = "FAIL: duplicate entry"
	loginAs(t, srv.URL)

	out, err := execute(ExcludeCmd(), "--offer", "o1", "--dataspace", "ds2", "--segment", "seg1", "--segment-name", "VIP")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL: duplicate entry")
	require.Len(t, b.writes["/api/segment-exclusions"], 1)
	assert.Equal(t, "US", b.writes["/api/segment-exclusions"][0]["dataspace_name"])
}

func TestIncludeCmdStructuredResponse(t *testing.T) {
	srv, b := newBackend(t)
	b.response = map[string]string{"outcome": "ok", "message": "linked"}
	loginAs(t, srv.URL)

	out, err := execute(IncludeCmd(), "--offer", "o1", "--dataspace", "ds1", "--segment", "seg1")
	require.NoError(t, err)
	assert.Contains(t, out, "linked")
}

func TestIncludeCmdRequiresFlags(t *testing.T) {
	_, err := execute(IncludeCmd(), "--offer", "o1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

type stubService struct {
	api.Service
	dataspaces []api.Dataspace
	segments   []api.Segment
}

func (s stubService) ListDataspaces() ([]api.Dataspace, error) { return s.dataspaces, nil }

func (s stubService) SearchSegments(string, string) ([]api.Segment, error) { return s.segments, nil }

func TestResolveLinkErrors(t *testing.T) {
	svc := stubService{
		dataspaces: []api.Dataspace{{ID: "ds1", Name: "EU"}},
		segments:   []api.Segment{{ID: "other", Name: "Other"}},
	}

	_, err := resolveLink(svc, linkFlags{dataspaceID: "nope", segmentID: "seg1"})
	assert.ErrorContains(t, err, `unknown dataspace "nope"`)

	_, err = resolveLink(svc, linkFlags{dataspaceID: "ds1", segmentID: "seg1"})
	assert.ErrorContains(t, err, "pass --segment-name")

	input, err := resolveLink(svc, linkFlags{offerID: "o1", dataspaceID: "ds1", segmentID: "seg1", segmentName: "VIP"})
	require.NoError(t, err)
	assert.Equal(t, api.SegmentLinkInput{OfferID: "o1", DataspaceName: "EU", SegmentID: "seg1", SegmentName: "VIP"}, input)
}
