// stepconv converts documents between old-style property lists, JSON and
// YAML.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	yaml "gopkg.in/yaml.v2"

	"ostep.dev/plist"
)

type options struct {
	From       string `short:"f" long:"from" description:"input format" choice:"openstep" choice:"json" choice:"yaml" default:"openstep"`
	To         string `short:"t" long:"to" description:"output format" choice:"openstep" choice:"json" choice:"yaml" default:"json"`
	Output     string `short:"o" long:"output" description:"output file (default: stdout)"`
	Pretty     bool   `short:"p" long:"pretty" description:"indent the output"`
	SortKeys   bool   `long:"sort-keys" description:"sort dictionary keys on output"`
	GroupBytes bool   `long:"group-bytes" description:"group data bytes in fours"`
	NoNumbers  bool   `long:"no-numbers" description:"keep numeric-looking tokens as strings"`

	Positional struct {
		Input string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	if opts.Positional.Input != "" && opts.Positional.Input != "-" {
		f, err := os.Open(opts.Positional.Input)
		if err != nil {
			bail(err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		bail(err)
	}

	var root plist.Value
	switch opts.From {
	case "openstep":
		popts := []plist.ParserOption{plist.SortedDicts(true)}
		if opts.NoNumbers {
			popts = append(popts, plist.InterpretNumbers(false))
		}
		root, err = plist.Parse(data, popts...)
	case "json":
		var doc interface{}
		if err = json.Unmarshal(data, &doc); err == nil {
			root = toValue(doc)
		}
	case "yaml":
		var doc interface{}
		if err = yaml.Unmarshal(data, &doc); err == nil {
			root = toValue(doc)
		}
	}
	if err != nil {
		bail(err)
	}

	var out []byte
	switch opts.To {
	case "openstep":
		wopts := []plist.WriterOption{
			plist.SortKeys(opts.SortKeys),
			plist.GroupBytes(opts.GroupBytes),
		}
		if opts.Pretty {
			wopts = append(wopts, plist.Indent("\t"))
		}
		out, err = plist.Write(root, wopts...)
		out = append(out, '\n')
	case "json":
		if opts.Pretty {
			out, err = json.MarshalIndent(fromValue(root), "", "\t")
		} else {
			out, err = json.Marshal(fromValue(root))
		}
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(fromValue(root))
	}
	if err != nil {
		bail(err)
	}

	dst := io.Writer(os.Stdout)
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			bail(err)
		}
		defer f.Close()
		dst = f
	}
	if _, err := dst.Write(out); err != nil {
		bail(err)
	}
}

func bail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
