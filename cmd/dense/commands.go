package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/born-ml/dense/internal/serialization"
	"github.com/born-ml/dense/internal/tensor"
)

func demoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Set and read back one entry of a 5-D tensor",
		Long: `Create a zero tensor of shape (32, 100, 20, 30, 12), store 21 at
index (0, 99, 0, 2, 0), and print the value read back together with the
strides and linear offset used to address it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			t, err := tensor.Create(tensor.NewShape(32, 100, 20, 30, 12))
			if err != nil {
				return err
			}
			defer t.Release()
			if err := t.SetLabel("demo"); err != nil {
				return err
			}

			idx := tensor.NewIndex(0, 99, 0, 2, 0)
			if err := t.EntrySet(idx, 21); err != nil {
				return err
			}
			v, err := t.EntryGet(idx)
			if err != nil {
				return err
			}
			offset, err := t.Offset(idx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "-- Testing Tensor --")
			fmt.Fprintf(out, "%.3f\n", v)
			fmt.Fprintf(out, "shape:   %s\n", t.ShapeString())
			fmt.Fprintf(out, "strides: %s\n", tensor.Shape(t.Strides()))
			fmt.Fprintf(out, "index:   %s\n", idx)
			fmt.Fprintf(out, "offset:  %d\n", offset)

			path, _ := cmd.Flags().GetString("out")
			if path == "" {
				return nil
			}
			if err := serialization.Save(path, map[string]*tensor.Tensor{"demo": t}, nil); err != nil {
				return err
			}
			a.log.WithTensor("demo").Info("tensor saved", "path", path)
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "save the tensor to this .dense file")
	return cmd
}

// binaryCmd builds the add and sub commands, which differ only in the
// backend operation.
func binaryCmd(a *app, op string) *cobra.Command {
	verb := map[string]string{"add": "Add", "sub": "Subtract"}[op]

	cmd := &cobra.Command{
		Use:   op + " FILE",
		Short: verb + " two tensors stored in a .dense file",
		Long: verb + ` tensors --a and --b elementwise. The shapes must match
exactly; use 'dense broadcast' to expand a size-1 dimension first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nameA, _ := cmd.Flags().GetString("a")
			nameB, _ := cmd.Flags().GetString("b")

			f, err := serialization.Load(args[0], a.readOpts)
			if err != nil {
				return err
			}
			x, err := f.Tensor(nameA)
			if err != nil {
				return err
			}
			y, err := f.Tensor(nameB)
			if err != nil {
				return err
			}

			var result *tensor.Tensor
			if op == "add" {
				result, err = a.backend.Add(x, y)
			} else {
				result, err = a.backend.Sub(x, y)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().String("a", "", "name of the left operand")
	cmd.Flags().String("b", "", "name of the right operand")
	addOutputFlags(cmd)
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func broadcastCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "broadcast FILE",
		Short: "Expand a size-1 dimension of a stored tensor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("tensor")
			dim, _ := cmd.Flags().GetInt("dim")
			n, _ := cmd.Flags().GetInt("n")

			f, err := serialization.Load(args[0], a.readOpts)
			if err != nil {
				return err
			}
			t, err := f.Tensor(name)
			if err != nil {
				return err
			}

			result, err := a.backend.Broadcast(cmd.Context(), t, dim, n)
			if err != nil {
				return err
			}
			return a.emit(cmd, result)
		},
	}

	cmd.Flags().StringP("tensor", "t", "", "name of the tensor to expand")
	cmd.Flags().Int("dim", 0, "dimension to expand (must have size 1)")
	cmd.Flags().Int("n", 1, "new size of the dimension")
	addOutputFlags(cmd)
	_ = cmd.MarkFlagRequired("tensor")
	return cmd
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print every tensor stored in a .dense file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			f, err := serialization.Load(args[0], a.readOpts)
			if err != nil {
				return err
			}

			h := f.Header()
			fmt.Fprintf(out, "format:  v%d\n", h.FormatVersion)
			fmt.Fprintf(out, "created: %s\n", h.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))

			keys := make([]string, 0, len(f.Metadata()))
			for k := range f.Metadata() {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "meta:    %s=%s\n", k, f.Metadata()[k])
			}

			for _, name := range f.Names() {
				t, err := f.Tensor(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", name, t)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dense %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("out", "o", "", "save the result to this .dense file")
	cmd.Flags().String("name", "result", "tensor name used with --out")
}

// emit prints the result and, when --out is set, saves it.
func (a *app) emit(cmd *cobra.Command, result *tensor.Tensor) error {
	fmt.Fprintln(cmd.OutOrStdout(), result)

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return nil
	}
	name, _ := cmd.Flags().GetString("name")
	if err := serialization.Save(path, map[string]*tensor.Tensor{name: result}, nil); err != nil {
		return err
	}
	a.log.WithTensor(name).Info("tensor saved", "path", path, "shape", result.ShapeString())
	return nil
}
