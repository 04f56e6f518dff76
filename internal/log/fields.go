package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldJobID       = "job_id"
	FieldReportBasis = "report_basis"
	FieldCurrency    = "currency"
	FieldMonths      = "months"
	FieldSections    = "sections"
	FieldPDFBytes    = "pdf_bytes"
	FieldSpoolPath   = "spool_path"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentParser   = "parser"
	ComponentRenderer = "renderer"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentTrace    = "trace"
)

// Operations defines standard operation names
const (
	OpParse    = "parse"
	OpRender   = "render"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
