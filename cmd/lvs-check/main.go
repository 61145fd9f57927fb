// lvs-check loads a binary trust schema and decides whether one name may
// legally sign another under it.
//
// Usage:
//
//	lvs-check -schema schema.tlv -data /example/testApp/randomData -signer /example/testApp/KEY/author
//
// Options:
//
//	-schema   Path to the binary trust-schema file (required)
//	-data     NDN URI of the packet name being checked (required)
//	-signer   NDN URI of the candidate signer's key name (required)
//	-verbose  Log every matched node and its bindings, not just the verdict
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ndnlvs/lvs/pkg/match"
	"github.com/ndnlvs/lvs/pkg/model"
	"github.com/ndnlvs/lvs/pkg/ndnname"
	"github.com/ndnlvs/lvs/pkg/userfn"
	"github.com/pion/logging"
)

func main() {
	schemaPath := flag.String("schema", "", "path to the binary trust-schema file")
	dataURI := flag.String("data", "", "NDN URI of the packet name being checked")
	signerURI := flag.String("signer", "", "NDN URI of the candidate signer's key name")
	verbose := flag.Bool("verbose", false, "log every matched node and its bindings")
	flag.Parse()

	if *schemaPath == "" || *dataURI == "" || *signerURI == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*schemaPath, *dataURI, *signerURI, *verbose); err != nil {
		log.Fatalf("lvs-check: %v", err)
	}
}

func run(schemaPath, dataURI, signerURI string, verbose bool) error {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	m, err := model.DecodeModel(raw)
	if err != nil {
		return fmt.Errorf("decode schema: %w", err)
	}

	dataName, err := ndnname.ParseName(dataURI)
	if err != nil {
		return fmt.Errorf("parse -data: %w", err)
	}
	signerName, err := ndnname.ParseName(signerURI)
	if err != nil {
		return fmt.Errorf("parse -signer: %w", err)
	}

	var opts []match.Option
	if verbose {
		lf := logging.NewDefaultLoggerFactory()
		lf.DefaultLogLevel = logging.LogLevelTrace
		opts = append(opts, match.WithLoggerFactory(lf))
	}
	checker := match.New(m, userfn.Builtin(), opts...)

	if verbose {
		logMatches(checker, "data", dataName)
		logMatches(checker, "signer", signerName)
	}

	ok, err := checker.Check(dataName, signerName)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	if ok {
		fmt.Printf("ALLOWED: %s may be signed by %s\n", dataURI, signerURI)
		return nil
	}
	fmt.Printf("REJECTED: %s may not be signed by %s\n", dataURI, signerURI)
	os.Exit(1)
	return nil
}

func logMatches(checker *match.Checker, label string, name model.Name) {
	it := checker.Match(name)
	for {
		res, ok, err := it.Next()
		if err != nil {
			log.Printf("%s: match error: %v", label, err)
			return
		}
		if !ok {
			return
		}
		log.Printf("%s matches node %d (rule %v), bindings %v", label, res.Node, res.RuleName, res.Bindings)
	}
}
