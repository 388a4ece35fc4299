package constraints

const (
	HeaderRequestID = "X-Request-ID"
	ContextKeyID    = "id"
	ParamNamespace  = "namespace"
	ParamHash       = "hash"
)
