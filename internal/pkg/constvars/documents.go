package constvars

// Document kinds produced by the resolution chain.
const (
	DocumentKindRemotePDF        = "remote_pdf"
	DocumentKindLocalPreviewHTML = "local_preview_html"
	DocumentKindNone             = "none"
)

// Document classes required per appointment type.
const (
	RequiredDocumentSadt    = "sadt"
	RequiredDocumentReceipt = "recibo"
	RequiredDocumentNone    = "nenhum"
)

// Terminal print states of a single submission.
const (
	DocumentStatePrinted      = "printed"
	DocumentStatePrintBlocked = "print_blocked"
	DocumentStateSkipped      = "skipped"
)

const (
	DocumentTierRemoteCheck    = "remote_check"
	DocumentTierRemoteGenerate = "remote_generate"
	DocumentTierLocalSynthesis = "local_synthesis"
)

const (
	SadtArchiveObjectPrefix = "sadt/"
	NoticeKindInfo          = "info"
	NoticeKindWarning       = "warning"
	NoticeKindError         = "error"
)
