// Package serialization provides the .dense file format for saving and
// loading named float32 tensors.
//
//	Format Structure:
//	  [0x00: 4 bytes  Magic "DNSE"]
//	  [0x04: 4 bytes  Version (uint32 LE)]
//	  [0x08: 4 bytes  Flags (uint32 LE)]
//	  [0x0C: 4 bytes  Reserved]
//	  [0x10: 8 bytes  Header Size (uint64 LE)]
//	  [0x18: 8 bytes  Data Size (uint64 LE)]
//	  [0x20: 32 bytes SHA-256 of the data section]
//	  [0x40: Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Tensor data: little-endian float32, in header order]
//
// Labels travel with the tensors; shapes are stored exactly, including
// rank-0 scalars.
//
// Example usage:
//
//	err := serialization.Save("weights.dense", map[string]*tensor.Tensor{"w": w}, nil)
//
//	f, err := serialization.Load("weights.dense", serialization.ReaderOptions{})
//	w, err := f.Tensor("w")
package serialization
