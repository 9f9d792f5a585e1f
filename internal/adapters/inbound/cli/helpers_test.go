package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// completeAnswersYAML answers every item with CP.
func completeAnswersYAML() string {
	var b strings.Builder
	b.WriteString("obs: [\"É agitada.\"]\nanswers:\n")
	for id := 1; id <= 46; id++ {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(id))
		b.WriteString(": CP\n")
	}
	return b.String()
}

// fakeSheetDB serves the subset of the SheetDB REST API the form uses.
type fakeSheetDB struct {
	mu   sync.Mutex
	rows map[string][]map[string]string
	*httptest.Server
}

func newFakeSheetDB(t *testing.T) *fakeSheetDB {
	t.Helper()
	f := &fakeSheetDB{rows: map[string][]map[string]string{
		"LinkTokens": {{"token": "tok-1", "cpf": "12345678901", "disabled": "não"}},
		"Patients":   {{"cpf": "12345678901", "nome": "Ana", "ETDAH_II": "sim"}},
	}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeSheetDB) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q := r.URL.Query()
	sheet := q.Get("sheet")
	q.Del("sheet")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/search":
		out := []map[string]string{}
		for _, row := range f.rows[sheet] {
			match := true
			for k := range q {
				if row[k] != q.Get(k) {
					match = false
				}
			}
			if match {
				out = append(out, row)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	case r.Method == http.MethodPost:
		var body struct {
			Data []map[string]string `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.rows[sheet] = append(f.rows[sheet], body.Data...)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"created":1}`))
	case r.Method == http.MethodPatch:
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		var body struct {
			Data map[string]string `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, row := range f.rows[sheet] {
			if len(parts) == 2 && row[parts[0]] == parts[1] {
				for k, v := range body.Data {
					row[k] = v
				}
			}
		}
		_, _ = w.Write([]byte(`{"updated":1}`))
	default:
		http.NotFound(w, r)
	}
}

// configDir writes a .etdah.yaml pointing every store into a temp dir.
func configDir(t *testing.T, sheetdbURL string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, ".etdah.yaml", "sheetdb_base: "+sheetdbURL+"\n"+
		"data_dir: "+filepath.Join(dir, "data")+"\n"+
		"draft:\n  backend: file\n  dir: "+filepath.Join(dir, "drafts")+"\n  ttl_hours: 1\n")
	return dir
}
