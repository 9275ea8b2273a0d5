package metrics

const (
	LabelVersion  = "version"
	LabelKind     = "kind"
	LabelStatus   = "status"
	LabelResource = "resource"
	LabelCode     = "code"
)

// canonical conversion kinds
const (
	KindResultAndLogs   = "result_and_logs"
	KindFinishedL1Batch = "finished_l1_batch"
)

const (
	ResourceUndefined       = "undefined"
	ResourceFinishedL1Batch = "finished_l1_batch"
)
