package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognitext/relgraph/pkg/relgraph"
	"github.com/cognitext/relgraph/pkg/relgraph/config"
	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
	"github.com/cognitext/relgraph/pkg/relgraph/link"
	"github.com/cognitext/relgraph/pkg/relgraph/link/wikidata"
)

func main() {
	var (
		lexPath  = flag.String("lexicon", "", "Extra lexicon YAML overlaid on the built-in one (optional)")
		cfgPath  = flag.String("config", "", "Linker config YAML (optional)")
		doLink   = flag.Bool("link", false, "Resolve phrases against the knowledge base")
		text     = flag.String("text", "", "One-shot analysis (non-interactive mode)")
		showTags = flag.Bool("tags", false, "Print per-word tags and chunks")
	)
	flag.Parse()

	ctx := context.Background()

	analyzer, err := buildAnalyzer(*lexPath, *cfgPath, *doLink)
	if err != nil {
		log.Fatal(err)
	}

	// One-shot mode
	if *text != "" {
		if err := analyze(ctx, analyzer, *text, *showTags); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Println("  Relgraph CLI")
	fmt.Println("  Text -> dependency relations")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Type a sentence (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := analyze(ctx, analyzer, line, *showTags); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

func analyze(ctx context.Context, analyzer *relgraph.Analyzer, text string, showTags bool) error {
	res, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if showTags {
		fmt.Println("\nTags:")
		parts := make([]string, 0, len(res.Words))
		for _, w := range res.Words {
			parts = append(parts, fmt.Sprintf("%s/%s", w.Word, w.Tag))
		}
		fmt.Println("  " + strings.Join(parts, " "))

		fmt.Println("\nChunks:")
		for _, c := range res.Chunks {
			fmt.Printf("  [%s] %s\n", c.Kind, c.Text)
		}
	}

	if len(res.Edges) == 0 {
		fmt.Println("No relations found.")
		fmt.Println()
		return nil
	}

	fmt.Println("\nRelations:")
	for _, e := range res.Edges {
		fmt.Printf("  %s(%s, %s)\n", e.Rel, e.Head, e.Dep)
	}

	if len(res.Acronyms) > 0 {
		fmt.Println("\nAcronyms:")
		for short, long := range res.Acronyms {
			fmt.Printf("  %s = %s\n", short, long)
		}
	}

	if len(res.Entities) > 0 {
		fmt.Println("\nEntities:")
		for _, ent := range res.Entities {
			fmt.Printf("  %s -> %s (%s, score %.0f)\n", ent.Phrase, ent.IRI, ent.Label, ent.Confidence)
			if ent.Description != "" {
				fmt.Printf("    %s\n", ent.Description)
			}
		}
	}

	fmt.Println()
	return nil
}

func buildAnalyzer(lexPath, cfgPath string, doLink bool) (*relgraph.Analyzer, error) {
	lex := lexicon.Default()
	if lexPath != "" {
		if err := lex.LoadFromYAML(lexPath); err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	}

	opts := relgraph.Options{Lexicon: lex}
	if doLink {
		cfg := config.DefaultLinker()
		if cfgPath != "" {
			var err error
			cfg, err = config.LoadLinker(cfgPath)
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
		}
		client := &wikidata.Client{BaseURL: cfg.Endpoint}
		opts.Linker = link.New(client, cfg)
	}

	return relgraph.New(opts), nil
}
