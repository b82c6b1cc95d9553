package generator

import (
	"github.com/ClaudiaCodeLab/DemoMB/model"
	"github.com/ClaudiaCodeLab/DemoMB/pkg/weighted"
)

var ageBands = weighted.NewTable([]weighted.Choice{
	{Value: string(model.AgeBand18To25), Weight: 0.18},
	{Value: string(model.AgeBand26To35), Weight: 0.26},
	{Value: string(model.AgeBand36To45), Weight: 0.22},
	{Value: string(model.AgeBand46To60), Weight: 0.22},
	{Value: string(model.AgeBand60Plus), Weight: 0.12},
})

var residencies = weighted.NewTable([]weighted.Choice{
	{Value: string(model.ResidencyAD), Weight: 0.55},
	{Value: string(model.ResidencyES), Weight: 0.30},
	{Value: string(model.ResidencyFR), Weight: 0.15},
})

var segments = weighted.NewTable([]weighted.Choice{
	{Value: string(model.SegmentMass), Weight: 0.82},
	{Value: string(model.SegmentAffluent), Weight: 0.18},
})

var channels = weighted.NewTable([]weighted.Choice{
	{Value: string(model.ChannelWeb), Weight: 0.55},
	{Value: string(model.ChannelApp), Weight: 0.25},
	{Value: string(model.ChannelBranch), Weight: 0.20},
})

var devices = weighted.NewTable([]weighted.Choice{
	{Value: string(model.DeviceMobile), Weight: 0.72},
	{Value: string(model.DeviceDesktop), Weight: 0.28},
})

var sources = weighted.NewTable([]weighted.Choice{
	{Value: string(model.SourceGoogle), Weight: 0.40},
	{Value: string(model.SourceMeta), Weight: 0.28},
	{Value: string(model.SourceEmail), Weight: 0.12},
	{Value: string(model.SourceSEO), Weight: 0.12},
	{Value: string(model.SourceBranchReferral), Weight: 0.08},
})
