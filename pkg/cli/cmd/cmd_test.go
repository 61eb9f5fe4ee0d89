package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rzbill/armkit/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workspaceID = "/subscriptions/s/resourceGroups/rg/providers/Microsoft.OperationalInsights/workspaces/ws"
	incidentID  = workspaceID + "/providers/Microsoft.SecurityInsights/incidents/inc1"
)

const incidentPayload = `{
  "id": "` + incidentID + `",
  "name": "inc1",
  "type": "Microsoft.SecurityInsights/incidents",
  "properties": {"title": "Phishing wave", "severity": "High", "status": "New"}
}`

const botYAML = `
id: /subscriptions/sub1/resourceGroups/rg1/providers/Microsoft.HealthBot/healthBots/samplebot
name: samplebot
location: East US
sku:
  name: F0
properties:
  accessControlMethod: BotRbac
`

// harness runs commands against a private config and data directory.
type harness struct {
	t      *testing.T
	dir    string
	config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	body := "data_dir: " + filepath.Join(dir, "data") + "\ncolor: false\nmax_pages: 10\nlog:\n  output: \"null\"\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0o600))
	return &harness{t: t, dir: dir, config: cfg}
}

func (h *harness) file(name, body string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", h.config}, args...))
	err := root.ExecuteContext(h.t.Context())
	return stdout.String(), stderr.String(), err
}

func TestDecode_DetectsType(t *testing.T) {
	h := newHarness(t)
	path := h.file("incident.json", incidentPayload)

	out, errOut, err := h.run("decode", path)
	require.NoError(t, err)
	assert.JSONEq(t, incidentPayload, out)
	assert.Empty(t, errOut)
}

func TestDecode_YAMLInAndOut(t *testing.T) {
	h := newHarness(t)
	path := h.file("bot.yaml", botYAML)

	out, _, err := h.run("decode", "--type", "bot", "-o", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name: samplebot\n")
	assert.Contains(t, out, "location: East US\n")
	assert.Contains(t, out, "sku:\n  name: F0\n")
	assert.Less(t, strings.Index(out, "id:"), strings.Index(out, "properties:"), "member order is kept")
}

func TestDecode_Stdin(t *testing.T) {
	h := newHarness(t)
	root := NewRootCmd()
	var stdout bytes.Buffer
	root.SetIn(strings.NewReader(botYAML))
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", h.config, "decode", "-t", "healthbot/bot", "-"})

	require.NoError(t, root.ExecuteContext(t.Context()))
	assert.Contains(t, stdout.String(), `"name": "samplebot"`)
}

func TestDecode_WarnsOnUnknownEnumValues(t *testing.T) {
	h := newHarness(t)
	path := h.file("incident.json", strings.Replace(incidentPayload, `"High"`, `"Critical"`, 1))

	out, errOut, err := h.run("decode", path)
	require.NoError(t, err, "unknown enum values are not errors")
	assert.Contains(t, out, `"severity": "Critical"`)
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, errOut, "properties.severity")
	assert.Contains(t, errOut, `IncidentSeverity "Critical"`)
}

func TestDecode_ReportsErrorsAndContinues(t *testing.T) {
	h := newHarness(t)
	good := h.file("good.json", incidentPayload)
	bad := h.file("bad.json", `{"type":"Microsoft.SecurityInsights/incidents","properties":{"severity":"Low","status":"New"}}`)

	out, errOut, err := h.run("decode", bad, good)
	assert.EqualError(t, err, "1 of 2 inputs failed to decode")
	assert.Contains(t, errOut, "properties.title")
	assert.Contains(t, errOut, "MissingField")
	assert.Contains(t, out, "Phishing wave")
}

func TestDecode_JSONReport(t *testing.T) {
	h := newHarness(t)
	path := h.file("rule.json", `{"type":"Microsoft.SecurityInsights/alertRules","kind":"Nrt"}`)

	_, errOut, err := h.run("decode", "--report", "json", "--quiet", path)
	require.Error(t, err)
	assert.Contains(t, errOut, `"kind": "UnknownDiscriminator"`)
	assert.Contains(t, errOut, `"errors": 1`)
}

func TestDecode_JQ(t *testing.T) {
	h := newHarness(t)
	path := h.file("page.json", incidentPage([]string{"a", "b"}, ""))

	out, _, err := h.run("decode", "--type", "incidentList", "--jq", ".value[].properties.title", path)
	require.NoError(t, err)
	assert.Equal(t, "\"t-a\"\n\"t-b\"\n", out)

	_, _, err = h.run("decode", "--type", "incidentList", "--jq", ".value[", path)
	assert.ErrorContains(t, err, "invalid jq expression")
}

func TestResolveEntry(t *testing.T) {
	a := &app{catalog: catalog.Default()}

	tests := []struct {
		input   string
		want    string
		wantErr string
	}{
		{input: "securityinsights/alertRule", want: "securityinsights/alertRule"},
		{input: "alertRule", want: "securityinsights/alertRule"},
		{input: "botList", want: "healthbot/botList"},
		{input: "operations", wantErr: "ambiguous"},
		{input: "virtualMachine", wantErr: "unknown type"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := a.resolveEntry(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Name)
		})
	}
}

func TestEnumsKindsTypes(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("enums", "securityinsights")
	require.NoError(t, err)
	assert.Contains(t, out, "SourceType")
	assert.Contains(t, out, "Local file, Remote storage")
	assert.NotContains(t, out, "healthbot")

	out, _, err = h.run("kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "AutomationRuleAction")
	assert.Contains(t, out, "actionType")
	assert.Contains(t, out, "Scheduled")

	out, _, err = h.run("types")
	require.NoError(t, err)
	assert.Contains(t, out, "securityinsights/watchlistItemList")

	_, _, err = h.run("enums", "compute")
	assert.ErrorContains(t, err, "unknown provider")
}

func incidentPage(names []string, nextLink string) string {
	items := make([]string, 0, len(names))
	for _, n := range names {
		items = append(items, `{"id":"`+workspaceID+`/providers/Microsoft.SecurityInsights/incidents/`+n+`","name":"`+n+`","properties":{"title":"t-`+n+`","severity":"Low","status":"Active"}}`)
	}
	page := `{"value":[` + strings.Join(items, ",") + `]`
	if nextLink != "" {
		page += `,"nextLink":"` + nextLink + `"`
	}
	return page + "}"
}

func TestPages(t *testing.T) {
	h := newHarness(t)
	h.file("pages/page1.json", incidentPage([]string{"a", "b"}, "https://management.azure.com"+workspaceID+"/providers/Microsoft.SecurityInsights/incidents?api-version=2023-02-01&$skipToken=page2"))
	h.file("pages/page2.json", incidentPage([]string{"c"}, ""))
	dir := filepath.Join(h.dir, "pages")

	out, _, err := h.run("pages", "--type", "incidentList", "--dir", dir, "page1.json", "--import")
	require.NoError(t, err)
	assert.Contains(t, out, "page 1: 2 items\n")
	assert.Contains(t, out, "page 2: 1 items\n")
	assert.Contains(t, out, "3 items in 2 pages")
	assert.Contains(t, out, "stored 3 resources")

	out, _, err = h.run("list", "--type", "Microsoft.SecurityInsights/incidents")
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "securityinsights/incident")
}

func TestPages_Errors(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("pages", "--type", "incident", "--dir", h.dir, "page1.json")
	assert.ErrorContains(t, err, "is not a list type")

	h.file("loop.json", incidentPage([]string{"a"}, "https://example.test/loop"))
	_, _, err = h.run("pages", "--type", "incidentList", "--dir", h.dir, "loop.json")
	assert.ErrorContains(t, err, "stopped after 10 pages")

	_, _, err = h.run("pages", "--dir", h.dir, "loop.json")
	assert.ErrorContains(t, err, `"type" not set`)
}

func TestImportGetListDelete(t *testing.T) {
	h := newHarness(t)
	path := h.file("incident.json", incidentPayload)

	out, _, err := h.run("import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 resources from 1 files")

	out, _, err = h.run("get", incidentID)
	require.NoError(t, err)
	assert.JSONEq(t, incidentPayload, out)

	out, _, err = h.run("get", incidentID, "--jq", ".properties.severity")
	require.NoError(t, err)
	assert.Equal(t, "\"High\"\n", out)

	out, _, err = h.run("get", strings.ToUpper(incidentID), "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Phishing wave")

	_, _, err = h.run("import", h.file("again.json", strings.Replace(incidentPayload, `"New"`, `"Active"`, 1)))
	require.NoError(t, err)

	out, _, err = h.run("get", "--history", incidentID)
	require.NoError(t, err)
	assert.Contains(t, out, "ENTRY")
	assert.Equal(t, 2, strings.Count(out, "securityinsights/incident"))

	out, _, err = h.run("get", incidentID)
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "Active"`)

	out, _, err = h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "inc1")

	out, _, err = h.run("delete", incidentID)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	_, _, err = h.run("get", incidentID)
	assert.ErrorContains(t, err, "not found")

	out, _, err = h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No resources found")
}

func TestImport_Parallel(t *testing.T) {
	h := newHarness(t)
	var files []string
	for i, names := range [][]string{{"a", "b"}, {"c"}, {"d", "e", "f"}} {
		files = append(files, h.file(fmt.Sprintf("in/page%d.json", i), incidentPage(names, "")))
	}

	out, _, err := h.run(append([]string{"import", "--type", "incidentList", "-p", "2"}, files...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 6 resources from 3 files")

	_, _, err = h.run("import", "-p", "0", files[0])
	assert.ErrorContains(t, err, "--parallel")
}

func TestImport_RejectsResourcesWithoutID(t *testing.T) {
	h := newHarness(t)
	path := h.file("noid.json", `{"type":"Microsoft.SecurityInsights/incidents","properties":{"title":"x","severity":"Low","status":"New"}}`)

	_, _, err := h.run("import", path)
	assert.ErrorContains(t, err, "noid.json")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "Armkit")
	assert.Contains(t, out, "Microsoft.HealthBot")
	assert.Contains(t, out, "Microsoft.SecurityInsights")
}

func TestRoot_RejectsBadOutput(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("types", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestNormalizeInput(t *testing.T) {
	data, err := normalizeInput([]byte("name: x\ncount: 2\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","count":2}`, string(data))

	raw := []byte(` {"a":1}`)
	data, err = normalizeInput(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, data)

	_, err = normalizeInput([]byte("a: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestJSONToYAML(t *testing.T) {
	y, err := jsonToYAML([]byte(`{"b":"true","a":{"list":[1,"two"]},"c":"multi word"}`))
	require.NoError(t, err)
	out := string(y)
	assert.True(t, strings.HasPrefix(out, "b: \"true\"\na:\n"), "strings that look like booleans stay quoted, order is kept:\n%s", out)
	assert.Contains(t, out, "- two\n")
	assert.True(t, strings.HasSuffix(out, "c: multi word\n"), out)
	assert.NotContains(t, out, "{", "block style only")
}
