package actions

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"rardesc/archive"
	"rardesc/common"
	"rardesc/config"
	"rardesc/connector"
	"rardesc/state"
)

const testdataDir = "../testdata"

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = cfg
	return ctx, env
}

func fixture(name string) string {
	return filepath.Join(testdataDir, name)
}

// makeRar packs fixture as META-INF/ra.xml together with a jar entry.
func makeRar(t *testing.T, dir, name, descriptor string) string {
	t.Helper()
	data, err := os.ReadFile(fixture(descriptor))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for _, e := range []struct {
		name string
		data []byte
	}{{"acme.jar", []byte("jar")}, {"META-INF/ra.xml", data}} {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("zip: %v", err)
		}
		fw.Write(e.data)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip: %v", err)
	}
	return path
}

func parseFile(t *testing.T, path string) *connector.Connector {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	c, err := connector.ParseReader(f, nil)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return c
}

func TestParse(t *testing.T) {
	_, env := setupTestEnv(t)
	var out bytes.Buffer
	if err := parse(env, fixture("ra10.xml"), true, &out, env.Log); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, want := range []string{"Connector version=1.0", "IDs:", "  tx10: connector/resourceadapter/outbound-resourceadapter/transaction-support"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output misses %q:\n%s", want, out.String())
		}
	}
	if err := parse(env, fixture("missing.xml"), false, io.Discard, env.Log); err == nil {
		t.Fatalf("expected error for missing source")
	}
}

func TestParseArchiveWithResolver(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Parser.ResolveProperties = true
	t.Setenv("RARDESC_REAUTH", "true")

	dir := t.TempDir()
	xml := `<connector version="1.7"><resourceadapter><outbound-resourceadapter>
		<reauthentication-support>${RARDESC_REAUTH:false}</reauthentication-support>
		</outbound-resourceadapter></resourceadapter></connector>`
	if err := os.WriteFile(filepath.Join(dir, "ra.xml"), []byte(xml), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, src, err := load(env, filepath.Join(dir, "ra.xml"), env.Log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Archive || !c.ResourceAdapter.Outbound.ReauthenticationSupport {
		t.Fatalf("property was not resolved from environment")
	}

	rar := makeRar(t, dir, "acme.rar", "ra15.xml")
	if c, src, err = load(env, rar, env.Log); err != nil {
		t.Fatalf("load archive: %v", err)
	}
	if !src.Archive || c.Version != connector.Version15 {
		t.Fatalf("unexpected archive load %+v", src)
	}
}

func TestValidate(t *testing.T) {
	ctx, env := setupTestEnv(t)
	if err := validate(ctx, env, []string{fixture("ra15.xml"), fixture("ra16.xml"), fixture("ra17.xml")}, env.Log); err != nil {
		t.Fatalf("validate: %v", err)
	}

	broken := filepath.Join(t.TempDir(), "broken.xml")
	if err := os.WriteFile(broken, []byte(`<connector version="1.6"><vendor-name>x</vendor-name></connector>`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := validate(ctx, env, []string{broken, fixture("ra17.xml"), fixture("missing.xml")}, env.Log)
	if err == nil || !strings.HasPrefix(err.Error(), "2 of 3 descriptors failed validation") {
		t.Fatalf("unexpected error %v", err)
	}
	if !errors.Is(err, connector.ErrNoResourceAdapter) {
		t.Fatalf("causes must be kept: %v", err)
	}
}

func TestWriteFormatsAndOverwrite(t *testing.T) {
	_, env := setupTestEnv(t)
	c := parseFile(t, fixture("ra16.xml"))
	dst := filepath.Join(t.TempDir(), "out", "ra.xml")

	if err := write(env, c, dst, common.OutputFormatXml, env.Log); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !parseFile(t, dst).Equal(c) {
		t.Fatalf("written descriptor differs")
	}
	if err := write(env, c, dst, common.OutputFormatTree, env.Log); err == nil {
		t.Fatalf("existing destination must not be replaced without overwrite")
	}
	env.Overwrite = true
	if err := write(env, c, dst, common.OutputFormatTree, env.Log); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if !strings.HasPrefix(string(data), "Connector version=1.6") {
		t.Fatalf("expected tree output, got:\n%s", data)
	}

	if f := outputFormat("html", common.OutputFormatTree, env.Log); f != common.OutputFormatTree {
		t.Fatalf("unknown format must fall back to configured one")
	}
	if f := outputFormat("xml", common.OutputFormatTree, env.Log); f != common.OutputFormatXml {
		t.Fatalf("requested format ignored")
	}
}

func TestMerge(t *testing.T) {
	_, env := setupTestEnv(t)
	dir := t.TempDir()
	override := filepath.Join(dir, "override.xml")
	if err := os.WriteFile(override, []byte(`<connector version="1.7"><vendor-name>Other</vendor-name>
		<resourceadapter><config-property><config-property-name>Extra</config-property-name></config-property></resourceadapter></connector>`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dst := filepath.Join(dir, "merged.xml")
	if err := merge(env, fixture("ra15.xml"), override, dst, common.UntypedMatchStrict, env.Log); err != nil {
		t.Fatalf("merge: %v", err)
	}
	c := parseFile(t, dst)
	if c.VendorName.String() != "Acme" {
		t.Fatalf("base values must win, got %q", c.VendorName.String())
	}
	if n := len(c.ResourceAdapter.ConfigProperties()); n != 2 {
		t.Fatalf("expected united properties, got %d", n)
	}
}

func TestOverlayPatchArchive(t *testing.T) {
	_, env := setupTestEnv(t)
	dir := t.TempDir()
	rar := makeRar(t, dir, "acme.rar", "ra15.xml")
	ov := filepath.Join(dir, "prod.yaml")
	if err := os.WriteFile(ov, []byte("config_properties: {ServerUrl: tcp://prod:7222}\ntransaction_support: NoTransaction\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	patched := filepath.Join(dir, "patched.rar")
	if err := applyOverlay(env, rar, ov, patched, true, env.Log); err != nil {
		t.Fatalf("overlay: %v", err)
	}
	src, err := archive.Open(patched, env.Cfg.Archive.DescriptorPath)
	if err != nil {
		t.Fatalf("open patched: %v", err)
	}
	c, err := connector.ParseReader(bytes.NewReader(src.Data), nil)
	if err != nil {
		t.Fatalf("parse patched: %v", err)
	}
	if v := c.ResourceAdapter.ConfigProperties()[0].Value.String(); v != "tcp://prod:7222" {
		t.Fatalf("overlay value not in archive: %q", v)
	}
	if !c.ResourceAdapter.Outbound.TransactionSupportSet() || c.ResourceAdapter.Outbound.TransactionSupport() != connector.TransactionSupportNoTransaction {
		t.Fatalf("transaction support not in archive")
	}
	if err := applyOverlay(env, rar, ov, patched, true, env.Log); err == nil {
		t.Fatalf("existing destination must not be replaced without overwrite")
	}

	// plain output for descriptor sources
	out := filepath.Join(dir, "ra.xml")
	if err := applyOverlay(env, fixture("ra15.xml"), ov, out, true, env.Log); err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if v := parseFile(t, out).ResourceAdapter.ConfigProperties()[0].Value.String(); v != "tcp://prod:7222" {
		t.Fatalf("overlay value not written: %q", v)
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	ctx, env := setupTestEnv(t)
	dir := t.TempDir()
	ov := filepath.Join(dir, "prod.yaml")
	if err := os.WriteFile(ov, []byte("config_properties: {ServerUrl: tcp://prod:7222}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	if err := watch(ctx, env, fixture("ra15.xml"), ov, env.Log); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := watch(ctx, env, fixture("ra15.xml"), filepath.Join(dir, "missing.yaml"), env.Log); err == nil {
		t.Fatalf("expected error for missing overlay")
	}
}

func TestExtract(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Archive.FileNameTransliterate = true
	dir := t.TempDir()
	withModule := makeRar(t, dir, "db.rar", "ra17.xml")
	withoutModule := makeRar(t, dir, "Acme JMS.rar", "ra15.xml")
	dst := filepath.Join(dir, "out")

	if err := extract(ctx, env, []string{withModule, withoutModule}, dst, env.Log); err != nil {
		t.Fatalf("extract: %v", err)
	}
	for _, name := range []string{"acme-db.xml", "acme-jms.xml"} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	data, _ := os.ReadFile(filepath.Join(dst, "acme-db.xml"))
	orig, _ := os.ReadFile(fixture("ra17.xml"))
	if !bytes.Equal(data, orig) {
		t.Fatalf("descriptor must be extracted as is")
	}

	err := extract(ctx, env, []string{fixture("ra15.xml"), withModule}, dst, env.Log)
	if err == nil || !strings.Contains(err.Error(), "not an archive") || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected both failures reported, got %v", err)
	}
}

func TestDumpConfig(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Overwrite = true
	dst := filepath.Join(t.TempDir(), "cfg.yaml")
	for _, def := range []bool{true, false} {
		if err := dumpConfig(env, dst, def); err != nil {
			t.Fatalf("dumpconfig(default=%t): %v", def, err)
		}
		if _, err := config.LoadConfiguration(dst); err != nil {
			t.Fatalf("dumped configuration cannot be loaded: %v", err)
		}
	}
}
