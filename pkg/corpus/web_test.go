package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Besuch im Botanischen Garten</title></head>
<body>
<article>
<h1>Besuch im Botanischen Garten</h1>
<p>Der botanische Garten oeffnete im Fruehling seine Tore fuer alle
Besucher der Stadt. Zwischen den alten Baeumen wachsen seltene Pflanzen
aus vielen Laendern, und die Gaertner erklaeren geduldig, wie die
empfindlichen Gewaechse durch den Winter kommen. Besonders beliebt ist
das grosse Tropenhaus, in dem es auch im Januar warm und feucht bleibt
und Orchideen in allen Farben bluehen.</p>
<p>Am Wochenende fuehren freiwillige Helfer kleine Gruppen durch die
Anlage und beantworten Fragen zur Geschichte des Gartens, der vor mehr
als hundert Jahren gegruendet wurde und seitdem stetig gewachsen ist.</p>
</article>
</body>
</html>`

func TestFetchArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	article, err := FetchArticle(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchArticle failed: %v", err)
	}
	if !strings.Contains(article.Title, "Botanischen Garten") {
		t.Errorf("unexpected title %q", article.Title)
	}

	words := slices.Collect(article.Words())
	if len(words) == 0 {
		t.Fatal("no words extracted")
	}
	if !slices.Contains(words, "tropenhaus") {
		t.Errorf("expected word %q in %v", "tropenhaus", words)
	}
}

func TestFetchArticleBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchArticle(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
