package server

// EncodeRequest is the body of POST /v1/namespaces/:namespace/encode.
type EncodeRequest struct {
	Namespace string  `uri:"namespace" json:"-"`
	Numbers   []int64 `json:"numbers" validate:"required,min=1,dive,gte=0"`
}

type EncodeResponse struct {
	Hash string `json:"hash"`
}

// DecodeRequest is the body of POST /v1/namespaces/:namespace/decode and
// /hex/decode.
type DecodeRequest struct {
	Namespace string `uri:"namespace" json:"-"`
	Hash      string `json:"hash" validate:"required"`
}

type DecodeResponse struct {
	Numbers []int64 `json:"numbers"`
}

// BatchDecodeRequest is the body of POST /v1/namespaces/:namespace/decode/batch.
type BatchDecodeRequest struct {
	Namespace string   `uri:"namespace" json:"-"`
	Hashes    []string `json:"hashes" validate:"required,min=1,max=1000"`
}

// BatchDecodeResult reports one hash. Error is set instead of Numbers when
// the hash does not decode.
type BatchDecodeResult struct {
	Hash    string  `json:"hash"`
	Numbers []int64 `json:"numbers,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type BatchDecodeResponse struct {
	Results []BatchDecodeResult `json:"results"`
}

type EncodeHexRequest struct {
	Namespace string `uri:"namespace" json:"-"`
	Hex       string `json:"hex" validate:"required"`
}

type DecodeHexResponse struct {
	Hex string `json:"hex"`
}

// NamespaceInfo describes a registered codec.
type NamespaceInfo struct {
	Name       string `json:"name"`
	MinLength  int    `json:"min_length"`
	Alphabet   string `json:"alphabet"`
	Separators string `json:"separators"`
	Guards     string `json:"guards"`
}
