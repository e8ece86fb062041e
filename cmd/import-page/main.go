package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/net/html"

	"github.com/cognitext/relgraph/pkg/relgraph/gdc"
	"github.com/cognitext/relgraph/pkg/relgraph/lexicon"
	"github.com/cognitext/relgraph/pkg/relgraph/store/sqlite"
)

// blocks worth importing as standalone source nodes
var textBlocks = map[string]bool{
	"title": true, "h1": true, "h2": true, "h3": true,
	"p": true, "li": true, "blockquote": true,
}

func main() {
	var (
		pageURL = flag.String("url", "", "Page to import (required)")
		dbPath  = flag.String("db", "", "Database path (required)")
		lexPath = flag.String("lexicon", "", "Extra lexicon YAML (optional)")
		minLen  = flag.Int("minlen", 30, "Minimum block length in characters")
	)
	flag.Parse()

	if *pageURL == "" {
		log.Fatal("--url required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	log.Printf("Fetching %s...", *pageURL)
	blocks, err := fetchBlocks(ctx, *pageURL)
	if err != nil {
		log.Fatal("Failed to fetch page:", err)
	}

	nodes := make([]gdc.SourceNode, 0, len(blocks))
	for _, b := range blocks {
		if len(b.text) < *minLen {
			continue
		}
		nodes = append(nodes, gdc.SourceNode{
			ID:    ulid.Make().String(),
			Types: []string{"PageBlock"},
			Props: map[string]string{
				"text":    b.text,
				"element": b.element,
				"url":     *pageURL,
			},
		})
	}
	if len(nodes) == 0 {
		log.Fatal("No text blocks found")
	}
	log.Printf("Extracted %d text blocks", len(nodes))

	lex := lexicon.Default()
	if *lexPath != "" {
		if err := lex.LoadFromYAML(*lexPath); err != nil {
			log.Fatal("Failed to load lexicon:", err)
		}
	}

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	manager := gdc.New(lex, st)
	summary, err := manager.Reconcile(ctx, nodes)
	if err != nil {
		log.Fatal("Reconcile failed:", err)
	}

	log.Printf("✓ Run %s: %d concepts upserted, %d removed", summary.RunID, summary.Upserted, summary.Deleted)
}

type block struct {
	element string
	text    string
}

// fetchBlocks downloads the page and returns its text blocks in
// document order.
func fetchBlocks(ctx context.Context, pageURL string) ([]block, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	return extractBlocks(doc), nil
}

func extractBlocks(doc *html.Node) []block {
	var out []block
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "script" || n.Data == "style" || n.Data == "noscript":
				return
			case textBlocks[n.Data]:
				text := collapseSpace(nodeText(n))
				if text != "" {
					out = append(out, block{element: n.Data, text: text})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
