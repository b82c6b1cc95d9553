package model

// Campaign ...
type Campaign struct {
	ID     string
	Source Source
}

// Source is the acquisition channel a campaign is bound to.
type Source string

const (
	// SourceGoogle ...
	SourceGoogle Source = "google"

	// SourceMeta ...
	SourceMeta Source = "meta"

	// SourceEmail ...
	SourceEmail Source = "email"

	// SourceSEO ...
	SourceSEO Source = "seo"

	// SourceBranchReferral ...
	SourceBranchReferral Source = "branch_referral"
)

// Paid reports whether events attributed to this source carry a cost.
func (s Source) Paid() bool {
	switch s {
	case SourceGoogle, SourceMeta, SourceEmail:
		return true
	}
	return false
}

// Channel ...
type Channel string

const (
	// ChannelWeb ...
	ChannelWeb Channel = "web"

	// ChannelApp ...
	ChannelApp Channel = "app"

	// ChannelBranch ...
	ChannelBranch Channel = "branch"
)

// Device ...
type Device string

const (
	// DeviceMobile ...
	DeviceMobile Device = "mobile"

	// DeviceDesktop ...
	DeviceDesktop Device = "desktop"
)
