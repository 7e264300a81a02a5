package serialization

import (
	"time"
)

// Format constants.
const (
	MagicBytes      = "DNSE"
	FormatVersion   = 1
	HeaderAlignment = 64 // Tensor data starts on a 64-byte boundary
	FixedHeaderSize = 64 // 0x40 bytes
	ChecksumSize    = 32 // SHA-256
	ChecksumOffset  = 0x20
	ElementSize     = 4 // float32
)

// DTypeFloat32 is the only element type stored in .dense files.
const DTypeFloat32 = "float32"

// Flags for the .dense format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
	FlagHasLabels   uint32 = 1 << 1 // bit 1: at least one tensor is labeled
)

// Header represents the JSON header in a .dense file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// TensorMeta describes a tensor in the .dense file.
type TensorMeta struct {
	Name   string `json:"name"`            // Key the tensor is stored under
	Label  string `json:"label,omitempty"` // Display label, if the tensor had one
	DType  string `json:"dtype"`           // Always "float32"
	Shape  []int  `json:"shape"`           // Empty for scalars
	Offset int64  `json:"offset"`          // Bytes from start of data section
	Size   int64  `json:"size"`            // Size in bytes
}

// Find returns the metadata for name.
func (h *Header) Find(name string) (TensorMeta, bool) {
	for _, t := range h.Tensors {
		if t.Name == name {
			return t, true
		}
	}
	return TensorMeta{}, false
}

// alignedHeaderEnd returns the offset of the data section for a JSON header
// of the given size.
func alignedHeaderEnd(headerSize int64) int64 {
	end := int64(FixedHeaderSize) + headerSize
	padding := (HeaderAlignment - (end % HeaderAlignment)) % HeaderAlignment
	return end + padding
}
