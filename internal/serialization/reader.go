package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/dense/internal/tensor"
)

// ReaderOptions configures decoding.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Validation strictness level
}

// File is a decoded .dense file.
type File struct {
	header  Header
	flags   uint32
	tensors map[string]*tensor.Tensor
}

// Header returns the file header.
func (f *File) Header() Header {
	return f.header
}

// Flags returns the format flags.
func (f *File) Flags() uint32 {
	return f.flags
}

// Metadata returns the metadata map from the header.
func (f *File) Metadata() map[string]string {
	return f.header.Metadata
}

// Names returns the stored tensor names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.header.Tensors))
	for i, t := range f.header.Tensors {
		names[i] = t.Name
	}
	return names
}

// Tensor returns the tensor stored under name.
func (f *File) Tensor(name string) (*tensor.Tensor, error) {
	t, ok := f.tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTensorNotFound, name)
	}
	return t, nil
}

// Tensors returns every stored tensor keyed by name.
func (f *File) Tensors() map[string]*tensor.Tensor {
	out := make(map[string]*tensor.Tensor, len(f.tensors))
	for k, v := range f.tensors {
		out[k] = v
	}
	return out
}

// Decode reads a .dense stream.
func Decode(r io.Reader, opts ReaderOptions) (*File, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("failed to read fixed header: %w", err)
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}

	flags := binary.LittleEndian.Uint32(fixed[8:12])
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var checksum [ChecksumSize]byte
	copy(checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}
	if dataSize > math.MaxInt64/2 {
		return nil, fmt.Errorf("%w: data size %d", ErrOutOfBounds, dataSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	padding := alignedHeaderEnd(int64(headerSize)) - int64(FixedHeaderSize) - int64(headerSize)
	if _, err := io.CopyN(io.Discard, r, padding); err != nil {
		return nil, fmt.Errorf("failed to skip padding: %w", err)
	}

	//nolint:gosec // G115: dataSize is bounded above
	if err := ValidateHeader(&header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(int(min(dataSize, 1<<20))) // Grow further only as bytes actually arrive.
	//nolint:gosec // G115: dataSize is bounded above
	if _, err := io.CopyN(&buf, r, int64(dataSize)); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	data := buf.Bytes()

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(data, checksum); err != nil {
			return nil, err
		}
	}

	f := &File{
		header:  header,
		flags:   flags,
		tensors: make(map[string]*tensor.Tensor, len(header.Tensors)),
	}
	for _, meta := range header.Tensors {
		t, err := decodeTensor(meta, data)
		if err != nil {
			return nil, err
		}
		f.tensors[meta.Name] = t
	}
	return f, nil
}

// decodeTensor materializes one tensor from the data section. Bounds are
// checked here regardless of the validation level.
func decodeTensor(meta TensorMeta, data []byte) (*tensor.Tensor, error) {
	dataSize := int64(len(data))
	if meta.Offset < 0 || meta.Size < 0 || meta.Offset > dataSize || meta.Size > dataSize-meta.Offset ||
		meta.Size%ElementSize != 0 {
		return nil, &ValidationError{
			Type:    "out_of_bounds",
			Tensor:  meta.Name,
			Details: fmt.Sprintf("offset %d + size %d, data_size %d", meta.Offset, meta.Size, len(data)),
			Err:     ErrOutOfBounds,
		}
	}

	raw := data[meta.Offset : meta.Offset+meta.Size]
	values := make([]float32, len(raw)/ElementSize)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*ElementSize:]))
	}

	t, err := tensor.FromSlice(values, tensor.Shape(meta.Shape))
	if err != nil {
		return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
	}
	if meta.Label != "" {
		if err := t.SetLabel(meta.Label); err != nil {
			return nil, fmt.Errorf("tensor %q: %w", meta.Name, err)
		}
	}
	return t, nil
}

// Load reads a .dense file from path.
func Load(path string, opts ReaderOptions) (*File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	f, err := Decode(bufio.NewReader(file), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
