// fctfmt is a small command line demo of the formatting engine: it
// renders a format string against its trailing arguments and writes
// the result to stdout or a file, or, with -t, fans a batch of jobs
// read from a file or stdin out across worker goroutines.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fctfmt/src/engine"
	"fctfmt/src/printf"
	"fctfmt/src/util"
	"fctfmt/src/xtoa"
)

func main() {
	// Parse command line arguments.
	opt, err := util.ParseArgs()
	if err != nil {
		fmt.Printf("Command line argument error: %s\n", err)
		os.Exit(1)
	}

	installCustomSpecifiers()

	if opt.Threads > 0 {
		if err := runBatch(opt); err != nil {
			fmt.Printf("Batch error: %s\n", err)
			os.Exit(1)
		}
		return
	}

	if opt.Format == "" {
		fmt.Println("Command line argument error: no format string given")
		os.Exit(1)
	}
	if err := runSingle(opt); err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}

// installCustomSpecifiers registers the demo's custom directives: %Q
// pops an integer byte count and renders it as a human-readable size
// ("1.50KB") using the xtoa package, exercising engine.Install. %J
// wraps a popped string in a reentrant sub-format call, exercising
// State.Printf.
func installCustomSpecifiers() {
	engine.Install('Q', func(st *engine.State) {
		n := st.Args.PopInt64()
		st.PutStr(xtoa.HumanSize(n))
	})

	engine.Install('J', func(st *engine.State) {
		st.Printf("[%s]", engine.Str(st.Args.PopString()))
	})
}

// runSingle renders opt.Format against opt.Args and writes it to
// opt.Out, or stdout if opt.Out is empty.
func runSingle(opt util.Options) error {
	args := make([]engine.Arg, len(opt.Args))
	for i, a := range opt.Args {
		args[i] = guessArg(a)
	}

	out := os.Stdout
	if opt.Out != "" {
		f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	n, err := printf.Fprintf(out, opt.Format+"\n", args...)
	if err != nil {
		return err
	}
	if opt.Verbose {
		fmt.Fprintf(os.Stderr, "%d characters rendered\n", n)
	}
	return nil
}

// runBatch reads "format|arg,arg,..." lines from opt.In, or stdin if
// opt.In is empty, and renders each one concurrently across
// opt.Threads workers. Independent engine calls are safe to run this
// way: the only state they share is the specifier table, which is
// guarded by a lock.
func runBatch(opt util.Options) error {
	src, err := util.ReadSource(opt.In)
	if err != nil {
		return err
	}

	jobs := strings.Split(strings.TrimRight(src, "\n"), "\n")

	var out *os.File
	if opt.Out != "" {
		out, err = os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	util.ListenWrite(opt.Threads, out)
	defer util.Close()

	errs := util.NewPerror(len(jobs))
	defer errs.Stop()

	sem := make(chan struct{}, opt.Threads)
	done := make(chan struct{}, len(jobs))
	for _, job := range jobs {
		if strings.TrimSpace(job) == "" {
			done <- struct{}{}
			continue
		}
		job := job
		sem <- struct{}{}
		go func() {
			defer func() { <-sem; done <- struct{}{} }()
			w := util.NewWriter()
			if _, err := w.Render(job); err != nil {
				errs.Append(err)
			}
		}()
	}
	for range jobs {
		<-done
	}

	if errs.Len() > 0 {
		for e := range errs.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("%d of %d jobs failed", errs.Len(), len(jobs))
	}
	return nil
}

// guessArg infers an Arg kind from a raw command-line token: integer
// literals become Int, floating-point literals become Float, anything
// else is passed through as Str.
func guessArg(s string) engine.Arg {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return engine.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return engine.Float(f)
	}
	return engine.Str(s)
}
