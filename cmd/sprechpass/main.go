// Command sprechpass generates pronounceable random passwords and rebuilds
// the phonotactic tables behind them from a word corpus.
//
// Without arguments it prints a grid of passwords from the built-in German
// model. With -wordlist or -url it derives a fresh model instead, reports
// the size of its output space, and can persist it (-save) or print it in
// the model text format (-emit).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"iter"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/mwendt/sprechpass/pkg/batch"
	"github.com/mwendt/sprechpass/pkg/corpus"
	"github.com/mwendt/sprechpass/pkg/db"
	"github.com/mwendt/sprechpass/pkg/sprechpass"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	countFlag := flag.Int("n", 0, "Number of passwords to generate (0 prints a demo grid)")
	digitsFlag := flag.Int("digits", 0, "Number of digits to append to each password")
	workersFlag := flag.Int("workers", 4, "Concurrent generation workers")

	wordlistFlag := flag.String("wordlist", "", "Rebuild the model from a file with one lowercase word per line")
	urlFlag := flag.String("url", "", "Rebuild the model from the readable text of a web page")
	jaFlag := flag.Bool("ja", false, "Treat the corpus as Japanese text and romanize it first")
	cutoffFlag := flag.Int("cutoff", sprechpass.DefaultCutoff, "Entry budget per chain table when rebuilding")
	emitFlag := flag.Bool("emit", false, "Print the rebuilt model in the model text format")

	dbFlag := flag.String("db", "", "Path to a SQLite model database")
	saveFlag := flag.String("save", "", "Store the rebuilt model under this name (requires -db)")
	modelFlag := flag.String("model", "", "Generate from a stored model (requires -db)")
	tablesFlag := flag.String("tables", "", "Generate from a model text file")
	listFlag := flag.Bool("list", false, "List stored models (requires -db)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *listFlag {
		conn := openDB(*dbFlag)
		defer conn.Close()
		listModels(conn)
		return
	}

	if *wordlistFlag != "" || *urlFlag != "" {
		rebuild(ctx, *wordlistFlag, *urlFlag, *jaFlag, *cutoffFlag, *emitFlag, *dbFlag, *saveFlag)
		return
	}

	model := selectModel(*dbFlag, *modelFlag, *tablesFlag)
	issuer := batch.NewIssuer(model)
	issuer.Workers = *workersFlag

	if *countFlag > 0 {
		passwords, err := issuer.Issue(ctx, *countFlag, *digitsFlag)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		for _, pw := range passwords {
			fmt.Println(pw)
		}
		return
	}

	// Demo grid, 20 rows of 5.
	passwords, err := issuer.Issue(ctx, 100, *digitsFlag)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	for row := 0; row < 20; row++ {
		for col := 0; col < 4; col++ {
			fmt.Printf("%-15s ", passwords[row*5+col])
		}
		fmt.Println(passwords[row*5+4])
	}
}

// selectModel picks the generation model: a stored one, a model text file,
// or the built-in German tables.
func selectModel(dbPath, name, tablesPath string) *sprechpass.Model {
	switch {
	case name != "":
		conn := openDB(dbPath)
		defer conn.Close()
		model, err := db.LoadModel(conn, name)
		if err != nil {
			log.Fatalf("Failed to load model %q: %v", name, err)
		}
		return model
	case tablesPath != "":
		f, err := os.Open(tablesPath)
		if err != nil {
			log.Fatalf("Failed to open model file: %v", err)
		}
		defer f.Close()
		model, err := sprechpass.DecodeModel(f)
		if err != nil {
			log.Fatalf("Failed to parse model file: %v", err)
		}
		return model
	default:
		return sprechpass.German()
	}
}

// rebuild derives a model from the requested corpus and reports, saves or
// emits it.
func rebuild(ctx context.Context, wordlist, url string, japanese bool, cutoff int, emit bool, dbPath, saveName string) {
	builder := sprechpass.NewBuilder(cutoff)
	words, source := corpusWords(ctx, wordlist, url, japanese)

	model, strength, err := builder.Build(words)
	if err != nil {
		log.Fatalf("Failed to build model from %s: %v", source, err)
	}
	fmt.Printf("Built model from %s with cutoff %d.\n", source, builder.Cutoff)
	fmt.Printf("This model can generate %d different passwords.\n", strength)

	if saveName != "" {
		conn := openDB(dbPath)
		defer conn.Close()
		if err := db.SaveModel(conn, saveName, model, builder.Cutoff, strength); err != nil {
			log.Fatalf("Failed to save model: %v", err)
		}
		fmt.Printf("Saved as %q.\n", saveName)
	}
	if emit {
		if err := sprechpass.EncodeModel(os.Stdout, model); err != nil {
			log.Fatalf("Failed to emit model: %v", err)
		}
	}
}

// corpusWords resolves the corpus source selected by the flags into a word
// sequence plus a label for messages.
func corpusWords(ctx context.Context, wordlist, url string, japanese bool) (words iter.Seq[string], source string) {
	var text string
	switch {
	case wordlist != "":
		source = wordlist
		data, err := os.ReadFile(wordlist)
		if err != nil {
			log.Fatalf("Failed to read wordlist: %v", err)
		}
		text = string(data)
		if !japanese {
			return corpus.ScanWords(strings.NewReader(text)), source
		}
	case url != "":
		source = url
		fmt.Printf("Fetching %s...\n", url)
		article, err := corpus.FetchArticle(ctx, url)
		if err != nil {
			log.Fatalf("Failed to fetch corpus: %v", err)
		}
		if article.Title != "" {
			fmt.Printf("Title: %s\n", article.Title)
		}
		text = article.Text
		if !japanese {
			return article.Words(), source
		}
	}

	analyzer, err := corpus.NewJapaneseAnalyzer()
	if err != nil {
		log.Fatalf("Failed to create Japanese analyzer: %v", err)
	}
	return slices.Values(analyzer.Words(text)), source
}

func listModels(conn *sql.DB) {
	infos, err := db.ListModels(conn)
	if err != nil {
		log.Fatalf("Failed to list models: %v", err)
	}
	if len(infos) == 0 {
		fmt.Println("No stored models.")
		return
	}
	for _, info := range infos {
		fmt.Printf("%-20s cutoff=%-5d strength=%-8d %s\n",
			info.Name, info.Cutoff, info.Strength, info.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func openDB(path string) *sql.DB {
	if path == "" {
		log.Fatal("This operation needs a database; pass -db")
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.InitDB(conn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	return conn
}
