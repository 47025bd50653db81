package redirects

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := New([]Rule{
		{From: "/about", To: "/about-us"},
		{From: "/warehouse.php", To: "/services/warehousing-services"},
		{From: "/services/warehousing-services", To: "/services/storage"},
	})
	require.NoError(t, err)
	return table
}

func TestResolveIgnoresQueryString(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	plain, ok := table.Resolve("/about")
	require.True(t, ok)
	withQuery, ok := table.Resolve("/about?x=1")
	require.True(t, ok)
	require.Equal(t, plain, withQuery)

	withFragment, ok := table.Resolve("/about#team")
	require.True(t, ok)
	require.Equal(t, plain, withFragment)
}

func TestResolveMissesAreNotErrors(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	for _, path := range []string{"", "?x=1", "/", "/contact", "/about/", "/about.php"} {
		to, ok := table.Resolve(path)
		require.False(t, ok, "path %q", path)
		require.Empty(t, to)
	}
}

func TestResolveCaseInsensitiveFallback(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	lower, ok := table.Resolve("/about")
	require.True(t, ok)
	upper, ok := table.Resolve("/About")
	require.True(t, ok)
	require.Equal(t, lower, upper)

	to, ok := table.Resolve("/WAREHOUSE.PHP?utm_source=x")
	require.True(t, ok)
	require.Equal(t, "/services/warehousing-services", to)
}

func TestResolveIsSingleHop(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	to, ok := table.Resolve("/warehouse.php")
	require.True(t, ok)
	// the target is itself a rule source, but resolution stops after one hop
	require.Equal(t, "/services/warehousing-services", to)

	next, ok := table.Resolve(to)
	require.True(t, ok)
	require.Equal(t, "/services/storage", next)
}

func TestMatchReturnsDeclaredRule(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	rule, ok := table.Match("/Warehouse.PHP")
	require.True(t, ok)
	require.Equal(t, Rule{From: "/warehouse.php", To: "/services/warehousing-services"}, rule)
}

func TestNewRejectsCaseInsensitiveDuplicates(t *testing.T) {
	t.Parallel()

	_, err := New([]Rule{
		{From: "/About", To: "/about-us"},
		{From: "/about", To: "/company"},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateRule))
}

func TestNewRejectsInvalidPaths(t *testing.T) {
	t.Parallel()

	cases := []Rule{
		{From: "", To: "/x"},
		{From: "about", To: "/x"},
		{From: "/about", To: "https://example.com/about"},
		{From: "/about", To: "//example.com/about"},
		{From: "/about?x=1", To: "/x"},
	}
	for _, rule := range cases {
		_, err := New([]Rule{rule})
		require.ErrorIs(t, err, ErrInvalidRule, "rule %+v", rule)
	}
}

func TestRulesPreserveLoadOrder(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	rules := table.Rules()
	require.Len(t, rules, 3)
	require.Equal(t, "/about", rules[0].From)
	require.Equal(t, "/services/warehousing-services", rules[2].From)

	rules[0].To = "/mutated"
	to, _ := table.Resolve("/about")
	require.Equal(t, "/about-us", to)
}

func TestLegacyTableIsValid(t *testing.T) {
	t.Parallel()

	table, err := New(Legacy)
	require.NoError(t, err)
	require.Equal(t, len(Legacy), table.Len())

	to, ok := table.Resolve("/warehouse.php")
	require.True(t, ok)
	require.Equal(t, "/services/warehousing-services", to)
}

func TestNilTableResolvesNothing(t *testing.T) {
	t.Parallel()

	var table *Table
	_, ok := table.Resolve("/about")
	require.False(t, ok)
	require.Zero(t, table.Len())
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	rules, err := Decode(strings.NewReader("- from: /old\n  to: /new\n- from: /older\n  to: /new\n"))
	require.NoError(t, err)
	require.Equal(t, []Rule{{From: "/old", To: "/new"}, {From: "/older", To: "/new"}}, rules)

	empty, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = Decode(strings.NewReader("- source: /old\n"))
	require.Error(t, err)
}

func TestBuildMergesFileWithLegacy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "redirects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- from: /blog/old-post\n  to: /insights/new-post\n"), 0o600))

	table, err := Build(path)
	require.NoError(t, err)
	require.Equal(t, len(Legacy)+1, table.Len())

	to, ok := table.Resolve("/blog/old-post")
	require.True(t, ok)
	require.Equal(t, "/insights/new-post", to)
}

func TestBuildReportsCollisionWithLegacy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "redirects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- from: /Warehouse.php\n  to: /elsewhere\n"), 0o600))

	_, err := Build(path)
	require.ErrorIs(t, err, ErrDuplicateRule)
}

func TestBuildWithoutFileUsesLegacy(t *testing.T) {
	t.Parallel()

	table, err := Build("")
	require.NoError(t, err)
	require.Equal(t, len(Legacy), table.Len())

	_, err = Build(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

type canonicalRecorder struct {
	calls []string
}

func (c *canonicalRecorder) SetCanonical(href string) error {
	c.calls = append(c.calls, href)
	return nil
}

func TestApplyCanonical(t *testing.T) {
	t.Parallel()

	rec := &canonicalRecorder{}
	require.NoError(t, ApplyCanonical(rec, "https://tsgfulfillment.com/", "/services/warehousing-services?ref=nav"))
	require.NoError(t, ApplyCanonical(rec, "https://tsgfulfillment.com", ""))
	require.Equal(t, []string{
		"https://tsgfulfillment.com/services/warehousing-services",
		"https://tsgfulfillment.com/",
	}, rec.calls)
}
