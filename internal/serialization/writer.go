package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/born-ml/dense/internal/tensor"
)

// Encode writes tensors and optional metadata to w in .dense format.
// Tensors are stored in name order so equal inputs produce equal data sections.
func Encode(w io.Writer, tensors map[string]*tensor.Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(names)),
		Metadata:      metadata,
	}

	var flags uint32
	if len(metadata) > 0 {
		flags |= FlagHasMetadata
	}

	// Calculate tensor offsets and lay out the data section.
	var dataSize int64
	for _, name := range names {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		t := tensors[name]
		if !t.Valid() {
			return fmt.Errorf("tensor %q: %w", name, tensor.ErrInvalidTensor)
		}
		size := int64(t.NumElements()) * ElementSize
		meta := TensorMeta{
			Name:   name,
			DType:  DTypeFloat32,
			Shape:  []int(t.Shape()),
			Offset: dataSize,
			Size:   size,
		}
		if label, ok := t.Label(); ok {
			meta.Label = label
			flags |= FlagHasLabels
		}
		header.Tensors = append(header.Tensors, meta)
		dataSize += size
	}

	data := make([]byte, dataSize)
	for i, name := range names {
		off := header.Tensors[i].Offset
		for j, v := range tensors[name].Data() {
			binary.LittleEndian.PutUint32(data[off+int64(j)*ElementSize:], math.Float32bits(v))
		}
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(dataSize))
	checksum := ComputeChecksum(data)
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	padding := alignedHeaderEnd(int64(len(headerJSON))) - int64(FixedHeaderSize+len(headerJSON))
	if padding > 0 {
		if _, err := w.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// Save writes tensors to a .dense file at path, replacing any existing file.
func Save(path string, tensors map[string]*tensor.Tensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	bw := bufio.NewWriter(file)
	if err := Encode(bw, tensors, metadata); err != nil {
		return err
	}
	return bw.Flush()
}
