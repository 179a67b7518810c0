package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
)

type linkFlags struct {
	offerID     string
	dataspaceID string
	segmentID   string
	segmentName string
}

// IncludeCmd returns the `eligibility include` command.
func IncludeCmd() *cobra.Command {
	return linkCmd("include", "Add a segment to the offer's inclusions", api.Service.CreateSegmentInclusion)
}

// ExcludeCmd returns the `eligibility exclude` command.
func ExcludeCmd() *cobra.Command {
	return linkCmd("exclude", "Add a segment to the offer's exclusions", api.Service.CreateSegmentExclusion)
}

type writeFunc func(api.Service, api.SegmentLinkInput) (*api.WriteResult, error)

func linkCmd(use, short string, write writeFunc) *cobra.Command {
	var f linkFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := loadClient()
			if err != nil {
				return err
			}
			input, err := resolveLink(client, f)
			if err != nil {
				return err
			}
			result, err := write(client, input)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if result.Failed() {
				return fmt.Errorf("%s rejected", use)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.offerID, "offer", "", "offer record id")
	cmd.Flags().StringVar(&f.dataspaceID, "dataspace", "", "dataspace id")
	cmd.Flags().StringVar(&f.segmentID, "segment", "", "segment id")
	cmd.Flags().StringVar(&f.segmentName, "segment-name", "", "segment name (looked up when empty)")
	_ = cmd.MarkFlagRequired("offer")
	_ = cmd.MarkFlagRequired("dataspace")
	_ = cmd.MarkFlagRequired("segment")
	return cmd
}

// resolveLink turns ids into the names the write endpoints expect.
func resolveLink(svc api.Service, f linkFlags) (api.SegmentLinkInput, error) {
	dataspaces, err := svc.ListDataspaces()
	if err != nil {
		return api.SegmentLinkInput{}, fmt.Errorf("list dataspaces: %w", err)
	}
	dataspaceName := api.DataspaceName(dataspaces, f.dataspaceID)
	if dataspaceName == "" {
		return api.SegmentLinkInput{}, fmt.Errorf("unknown dataspace %q", f.dataspaceID)
	}

	segmentName := f.segmentName
	if segmentName == "" {
		segments, err := svc.SearchSegments(f.segmentID, f.dataspaceID)
		if err != nil {
			return api.SegmentLinkInput{}, fmt.Errorf("search segments: %w", err)
		}
		for _, seg := range segments {
			if seg.ID == f.segmentID {
				segmentName = seg.Name
				break
			}
		}
		if segmentName == "" {
			return api.SegmentLinkInput{}, fmt.Errorf("unknown segment %q; pass --segment-name", f.segmentID)
		}
	}

	return api.SegmentLinkInput{
		OfferID:       f.offerID,
		DataspaceName: dataspaceName,
		SegmentID:     f.segmentID,
		SegmentName:   segmentName,
	}, nil
}
