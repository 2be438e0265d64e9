package parser

import (
	"testing"

	"github.com/sqlshape/mysqlselect/result"
)

func parseOK(t *testing.T, sql string) *result.Result {
	t.Helper()
	p := New([]byte(sql))
	res, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", sql, err)
	}
	return res
}

func parseFails(t *testing.T, sql string) {
	t.Helper()
	p := New([]byte(sql))
	if _, err := p.Parse(); err == nil {
		t.Fatalf("Parse(%q): want error, got none", sql)
	}
}

func TestModifiers(t *testing.T) {
	res := parseOK(t, "SELECT DISTINCT SQL_CALC_FOUND_ROWS a FROM t")
	if got := string(res.Section(result.Modifiers).Content); got != "DISTINCT SQL_CALC_FOUND_ROWS" {
		t.Fatalf("modifiers = %q", got)
	}
}

func TestColumnAliasForms(t *testing.T) {
	res := parseOK(t, "SELECT a AS x, b y, c FROM t")
	if got := string(res.Section(result.Columns).Content); got != "a AS x, b y, c" {
		t.Fatalf("columns = %q", got)
	}
}

func TestFirstIntoOutfileWithFieldsAndLines(t *testing.T) {
	res := parseOK(t, `SELECT a INTO OUTFILE '/tmp/x' FIELDS TERMINATED BY ',' OPTIONALLY ENCLOSED BY '"' LINES TERMINATED BY '\n' FROM t`)
	if !res.Section(result.FirstInto).Populated() {
		t.Fatalf("first_into not populated")
	}
}

func TestFirstIntoVariableList(t *testing.T) {
	res := parseOK(t, "SELECT a, b INTO @x, @y FROM t")
	if got := string(res.Section(result.FirstInto).Content); got != "@x, @y" {
		t.Fatalf("first_into = %q", got)
	}
}

func TestFromQualifiedBacktickAndPartition(t *testing.T) {
	parseOK(t, "SELECT 1 FROM `db`.`t`")
	res := parseOK(t, "SELECT 1 FROM t PARTITION (p0, p1) AS alias")
	if got := string(res.Section(result.Tables).Content); got != "t PARTITION (p0, p1) AS alias" {
		t.Fatalf("tables = %q", got)
	}
}

func TestFromParenthesizedDerivedTableWithColumnList(t *testing.T) {
	res := parseOK(t, "SELECT 1 FROM (SELECT a FROM t) AS sub (x)")
	if !res.Section(result.Tables).Populated() {
		t.Fatalf("tables not populated")
	}
}

func TestFromParenthesizedIdentifierList(t *testing.T) {
	parseOK(t, "SELECT 1 FROM (t1, t2)")
}

func TestIndexHintChaining(t *testing.T) {
	res := parseOK(t, "SELECT 1 FROM t USE INDEX (a), FORCE INDEX FOR JOIN (b)")
	if got := string(res.Section(result.Tables).Content); got != "t USE INDEX (a), FORCE INDEX FOR JOIN (b)" {
		t.Fatalf("tables = %q", got)
	}
}

func TestIndexHintChainDoesNotSwallowTableListComma(t *testing.T) {
	res := parseOK(t, "SELECT 1 FROM t1 USE INDEX (a), t2")
	if got := string(res.Section(result.Tables).Content); got != "t1 USE INDEX (a), t2" {
		t.Fatalf("tables = %q", got)
	}
}

func TestJoinVariants(t *testing.T) {
	for _, sql := range []string{
		"SELECT 1 FROM t1 JOIN t2 ON t1.a = t2.a",
		"SELECT 1 FROM t1 INNER JOIN t2 ON t1.a = t2.a",
		"SELECT 1 FROM t1 CROSS JOIN t2",
		"SELECT 1 FROM t1 STRAIGHT JOIN t2 ON t1.a = t2.a",
		"SELECT 1 FROM t1 LEFT JOIN t2 ON t1.a = t2.a",
		"SELECT 1 FROM t1 LEFT OUTER JOIN t2 ON t1.a = t2.a",
		"SELECT 1 FROM t1 RIGHT JOIN t2 USING (a)",
		"SELECT 1 FROM t1 NATURAL JOIN t2",
		"SELECT 1 FROM t1 NATURAL LEFT JOIN t2",
		"SELECT 1 FROM t1 NATURAL RIGHT OUTER JOIN t2",
		"SELECT 1 FROM t1 JOIN t2 ON a = b JOIN t3 ON c = d",
	} {
		parseOK(t, sql)
	}
}

func TestLeftRightJoinRequiresOnOrUsing(t *testing.T) {
	parseFails(t, "SELECT 1 FROM t1 LEFT JOIN t2")
}

func TestWhereGroupByHavingOrderBy(t *testing.T) {
	res := parseOK(t, "SELECT a, COUNT(*) FROM t WHERE a > 1 GROUP BY a HAVING COUNT(*) > 1 ORDER BY a DESC, b")
	if got := string(res.Section(result.Where).Content); got != "a > 1" {
		t.Fatalf("where = %q", got)
	}
	if got := string(res.Section(result.GroupBy).Content); got != "a" {
		t.Fatalf("group_by = %q", got)
	}
	if got := string(res.Section(result.Having).Content); got != "COUNT(*) > 1" {
		t.Fatalf("having = %q", got)
	}
	if got := string(res.Section(result.OrderBy).Content); got != "a DESC, b" {
		t.Fatalf("order_by = %q", got)
	}
}

func TestLimitForms(t *testing.T) {
	cases := map[string]string{
		"SELECT 1 FROM t LIMIT 10":          "10",
		"SELECT 1 FROM t LIMIT 5, 10":       "5, 10",
		"SELECT 1 FROM t LIMIT 5 10":        "5 10",
		"SELECT 1 FROM t LIMIT 5 OFFSET 10": "5 OFFSET 10",
	}
	for sql, want := range cases {
		res := parseOK(t, sql)
		if got := string(res.Section(result.Limit).Content); got != want {
			t.Errorf("%q: limit = %q, want %q", sql, got, want)
		}
	}
}

func TestProcedureAndSecondIntoAndFlags(t *testing.T) {
	res := parseOK(t, "SELECT a FROM t PROCEDURE analyse(1, 2) INTO @v FOR UPDATE")
	if got := string(res.Section(result.Procedure).Content); got != "analyse(1, 2)" {
		t.Fatalf("procedure = %q", got)
	}
	if got := string(res.Section(result.SecondInto).Content); got != "@v" {
		t.Fatalf("second_into = %q", got)
	}
	if got := string(res.Section(result.Flags).Content); got != "FOR UPDATE" {
		t.Fatalf("flags = %q", got)
	}

	res2 := parseOK(t, "SELECT a FROM t LOCK IN SHARE MODE")
	if got := string(res2.Section(result.Flags).Content); got != "LOCK IN SHARE MODE" {
		t.Fatalf("flags = %q", got)
	}
}

func TestExpressionForms(t *testing.T) {
	for _, sql := range []string{
		"SELECT 1 + 2 * 3",
		"SELECT a SOUNDS LIKE b",
		"SELECT a NOT LIKE b ESCAPE '!'",
		"SELECT a REGEXP '^x'",
		"SELECT a NOT BETWEEN 1 AND 10",
		"SELECT a IN (1, 2, 3)",
		"SELECT NOT a",
		"SELECT -a + +b",
		"SELECT ~a",
		"SELECT !a",
		"SELECT BINARY a",
		"SELECT a COLLATE utf8_general_ci",
		"SELECT INTERVAL 1 DAY",
		"SELECT CASE a WHEN 1 THEN 'x' ELSE 'y' END",
		"SELECT CASE WHEN a = 1 THEN 'x' END",
		"SELECT MATCH(a, b) AGAINST ('x')",
		"SELECT MATCH(a) AGAINST ('x' IN BOOLEAN MODE)",
		"SELECT MATCH(a) AGAINST ('x' IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION)",
		"SELECT ROW(1, 2, 3)",
		"SELECT EXISTS (SELECT 1 FROM t)",
		"SELECT (SELECT 1)",
		"SELECT a = ALL (SELECT b FROM t)",
		"SELECT a IS NOT NULL",
		"SELECT a IS TRUE",
		"SELECT DATE '2020-01-01'",
		"SELECT COUNT(*)",
		"SELECT COUNT(a, b)",
		"SELECT utf8'a' utf8'b'",
	} {
		parseOK(t, sql)
	}
}

func TestExpressionBoundaryFailures(t *testing.T) {
	for _, sql := range []string{
		"SELECT INTERVAL 1",
		"SELECT CASE WHEN 1 THEN",
		"SELECT MATCH(a) AGAINST",
		"SELECT 1 +",
		"SELECT ??",
	} {
		parseFails(t, sql)
	}
}

func TestTrailingInputIsInvalid(t *testing.T) {
	p := New([]byte("SELECT 1 FROM t WHERE a = 1 extra"))
	if _, err := p.Parse(); err == nil {
		t.Fatalf("want error for trailing input")
	}
}
