package parser

import (
	"sort"
	"strings"
)

type keywordClass int

const (
	// nonReserved keywords are identifiers in every mode.
	nonReserved keywordClass = iota
	// strictNonReserved keywords are identifiers in default mode, except
	// where a strict identifier (table alias) is required.
	strictNonReserved
	// reserved keywords are identifiers in default mode only.
	reserved
)

// keywords is the authoritative table of words the lexer classifies as
// keywords, keyed by canonical name.
var keywords = map[string]keywordClass{
	"ADD":               nonReserved,
	"AFTER":             nonReserved,
	"ALL":               reserved,
	"ALTER":             nonReserved,
	"ANALYZE":           nonReserved,
	"AND":               reserved,
	"ANTI":              strictNonReserved,
	"ANY":               reserved,
	"ARCHIVE":           nonReserved,
	"ARRAY":             nonReserved,
	"AS":                reserved,
	"ASC":               nonReserved,
	"AT":                nonReserved,
	"AUTHORIZATION":     reserved,
	"BETWEEN":           nonReserved,
	"BOTH":              reserved,
	"BUCKET":            nonReserved,
	"BUCKETS":           nonReserved,
	"BY":                nonReserved,
	"CACHE":             nonReserved,
	"CASCADE":           nonReserved,
	"CASE":              reserved,
	"CAST":              reserved,
	"CHANGE":            nonReserved,
	"CHECK":             reserved,
	"CLEAR":             nonReserved,
	"CLUSTER":           nonReserved,
	"CLUSTERED":         nonReserved,
	"CODEGEN":           nonReserved,
	"COLLATE":           reserved,
	"COLLECTION":        nonReserved,
	"COLUMN":            reserved,
	"COLUMNS":           nonReserved,
	"COMMENT":           nonReserved,
	"COMMIT":            nonReserved,
	"COMPACT":           nonReserved,
	"COMPACTIONS":       nonReserved,
	"COMPUTE":           nonReserved,
	"CONCATENATE":       nonReserved,
	"CONSTRAINT":        reserved,
	"COST":              nonReserved,
	"CREATE":            reserved,
	"CROSS":             strictNonReserved,
	"CUBE":              nonReserved,
	"CURRENT":           nonReserved,
	"CURRENT_DATE":      reserved,
	"CURRENT_TIME":      reserved,
	"CURRENT_TIMESTAMP": reserved,
	"CURRENT_USER":      reserved,
	"DATA":              nonReserved,
	"DATABASE":          nonReserved,
	"DATABASES":         nonReserved,
	"DBPROPERTIES":      nonReserved,
	"DEFINED":           nonReserved,
	"DELETE":            nonReserved,
	"DELIMITED":         nonReserved,
	"DESC":              nonReserved,
	"DESCRIBE":          nonReserved,
	"DFS":               nonReserved,
	"DIRECTORIES":       nonReserved,
	"DIRECTORY":         nonReserved,
	"DISTINCT":          reserved,
	"DISTRIBUTE":        nonReserved,
	"DIV":               nonReserved,
	"DROP":              nonReserved,
	"ELSE":              reserved,
	"END":               reserved,
	"ESCAPE":            reserved,
	"ESCAPED":           nonReserved,
	"EXCEPT":            strictNonReserved,
	"EXCHANGE":          nonReserved,
	"EXISTS":            nonReserved,
	"EXPLAIN":           nonReserved,
	"EXPORT":            nonReserved,
	"EXTENDED":          nonReserved,
	"EXTERNAL":          nonReserved,
	"EXTRACT":           nonReserved,
	"FALSE":             reserved,
	"FETCH":             reserved,
	"FIELDS":            nonReserved,
	"FILEFORMAT":        nonReserved,
	"FILTER":            reserved,
	"FIRST":             nonReserved,
	"FOLLOWING":         nonReserved,
	"FOR":               reserved,
	"FOREIGN":           reserved,
	"FORMAT":            nonReserved,
	"FORMATTED":         nonReserved,
	"FROM":              reserved,
	"FULL":              strictNonReserved,
	"FUNCTION":          nonReserved,
	"FUNCTIONS":         nonReserved,
	"GLOBAL":            nonReserved,
	"GRANT":             reserved,
	"GROUP":             reserved,
	"GROUPING":          nonReserved,
	"HAVING":            reserved,
	"IF":                nonReserved,
	"IGNORE":            nonReserved,
	"IMPORT":            nonReserved,
	"IN":                reserved,
	"INDEX":             nonReserved,
	"INDEXES":           nonReserved,
	"INNER":             strictNonReserved,
	"INPATH":            nonReserved,
	"INPUTFORMAT":       nonReserved,
	"INSERT":            nonReserved,
	"INTERSECT":         strictNonReserved,
	"INTERVAL":          nonReserved,
	"INTO":              reserved,
	"IS":                reserved,
	"ITEMS":             nonReserved,
	"JOIN":              strictNonReserved,
	"KEYS":              nonReserved,
	"LAST":              nonReserved,
	"LATERAL":           nonReserved,
	"LAZY":              nonReserved,
	"LEADING":           reserved,
	"LEFT":              strictNonReserved,
	"LIKE":              nonReserved,
	"LIMIT":             nonReserved,
	"LINES":             nonReserved,
	"LIST":              nonReserved,
	"LOAD":              nonReserved,
	"LOCAL":             nonReserved,
	"LOCATION":          nonReserved,
	"LOCK":              nonReserved,
	"LOCKS":             nonReserved,
	"LOGICAL":           nonReserved,
	"MACRO":             nonReserved,
	"MAP":               nonReserved,
	"MATCHED":           nonReserved,
	"MERGE":             nonReserved,
	"MSCK":              nonReserved,
	"NAMESPACE":         nonReserved,
	"NAMESPACES":        nonReserved,
	"NATURAL":           strictNonReserved,
	"NO":                nonReserved,
	"NOT":               reserved,
	"NULL":              reserved,
	"NULLS":             nonReserved,
	"OF":                nonReserved,
	"ON":                strictNonReserved,
	"ONLY":              reserved,
	"OPTION":            nonReserved,
	"OPTIONS":           nonReserved,
	"OR":                reserved,
	"ORDER":             reserved,
	"OUT":               nonReserved,
	"OUTER":             reserved,
	"OUTPUTFORMAT":      nonReserved,
	"OVER":              nonReserved,
	"OVERLAPS":          nonReserved,
	"OVERLAY":           nonReserved,
	"OVERWRITE":         nonReserved,
	"PARTITION":         nonReserved,
	"PARTITIONED":       nonReserved,
	"PARTITIONS":        nonReserved,
	"PERCENT":           nonReserved,
	"PIVOT":             nonReserved,
	"PLACING":           nonReserved,
	"POSITION":          nonReserved,
	"PRECEDING":         nonReserved,
	"PRIMARY":           reserved,
	"PRINCIPALS":        nonReserved,
	"PROPERTIES":        nonReserved,
	"PURGE":             nonReserved,
	"QUERY":             nonReserved,
	"RANGE":             nonReserved,
	"RECORDREADER":      nonReserved,
	"RECORDWRITER":      nonReserved,
	"RECOVER":           nonReserved,
	"REDUCE":            nonReserved,
	"REFERENCES":        reserved,
	"REFRESH":           nonReserved,
	"RENAME":            nonReserved,
	"REPAIR":            nonReserved,
	"REPLACE":           nonReserved,
	"RESET":             nonReserved,
	"RESTRICT":          nonReserved,
	"REVOKE":            nonReserved,
	"RIGHT":             strictNonReserved,
	"RLIKE":             nonReserved,
	"ROLE":              nonReserved,
	"ROLES":             nonReserved,
	"ROLLBACK":          nonReserved,
	"ROLLUP":            nonReserved,
	"ROW":               nonReserved,
	"ROWS":              nonReserved,
	"SCHEMA":            nonReserved,
	"SELECT":            reserved,
	"SEMI":              strictNonReserved,
	"SEPARATED":         nonReserved,
	"SERDE":             nonReserved,
	"SERDEPROPERTIES":   nonReserved,
	"SESSION_USER":      reserved,
	"SET":               nonReserved,
	"SETMINUS":          strictNonReserved,
	"SETS":              nonReserved,
	"SHOW":              nonReserved,
	"SKEWED":            nonReserved,
	"SOME":              reserved,
	"SORT":              nonReserved,
	"SORTED":            nonReserved,
	"START":             nonReserved,
	"STATISTICS":        nonReserved,
	"STORED":            nonReserved,
	"STRATIFY":          nonReserved,
	"STRUCT":            nonReserved,
	"SUBSTR":            nonReserved,
	"SUBSTRING":         nonReserved,
	"SYNC":              nonReserved,
	"TABLE":             reserved,
	"TABLES":            nonReserved,
	"TABLESAMPLE":       nonReserved,
	"TBLPROPERTIES":     nonReserved,
	"TEMPORARY":         nonReserved,
	"TERMINATED":        nonReserved,
	"THEN":              reserved,
	"TIME":              reserved,
	"TO":                reserved,
	"TOUCH":             nonReserved,
	"TRAILING":          reserved,
	"TRANSACTION":       nonReserved,
	"TRANSACTIONS":      nonReserved,
	"TRANSFORM":         nonReserved,
	"TRIM":              nonReserved,
	"TRUE":              reserved,
	"TRUNCATE":          nonReserved,
	"TRY_CAST":          nonReserved,
	"TYPE":              nonReserved,
	"UNARCHIVE":         nonReserved,
	"UNBOUNDED":         nonReserved,
	"UNCACHE":           nonReserved,
	"UNION":             strictNonReserved,
	"UNIQUE":            reserved,
	"UNKNOWN":           reserved,
	"UNLOCK":            nonReserved,
	"UNSET":             nonReserved,
	"UPDATE":            nonReserved,
	"USE":               nonReserved,
	"USER":              reserved,
	"USING":             strictNonReserved,
	"VALUES":            nonReserved,
	"VIEW":              nonReserved,
	"VIEWS":             nonReserved,
	"WHEN":              reserved,
	"WHERE":             reserved,
	"WINDOW":            nonReserved,
	"WITH":              reserved,
	"ZONE":              nonReserved,
}

// keywordAliases maps alternative spellings to the canonical keyword.
var keywordAliases = map[string]string{
	"MINUS":   "SETMINUS",
	"REGEXP":  "RLIKE",
	"SCHEMAS": "DATABASES",
	"TEMP":    "TEMPORARY",
}

// aliasStopWords are keywords that terminate an expression or relation
// where an AS-less alias could otherwise start.
var aliasStopWords = map[string]bool{
	"ANTI": true, "AND": true, "AS": true, "BETWEEN": true, "CLUSTER": true,
	"CROSS": true, "DISTRIBUTE": true, "ELSE": true, "END": true, "EXCEPT": true,
	"FILTER": true, "FOR": true, "FROM": true, "FULL": true, "GROUP": true,
	"HAVING": true, "IN": true, "INNER": true, "INSERT": true, "INTERSECT": true,
	"IS": true, "JOIN": true, "LATERAL": true, "LEFT": true, "LIKE": true,
	"LIMIT": true, "MAP": true, "NATURAL": true, "NOT": true, "ON": true,
	"OR": true, "ORDER": true, "OVER": true, "PIVOT": true, "REDUCE": true,
	"RIGHT": true, "RLIKE": true, "SELECT": true, "SEMI": true, "SET": true,
	"SETMINUS": true, "SORT": true, "TABLESAMPLE": true, "THEN": true,
	"UNION": true, "USING": true, "WHEN": true, "WHERE": true, "WINDOW": true,
	"WITH": true, "ROW": true, "RECORDWRITER": true, "ESCAPE": true,
}

func lookupKeyword(word string) string {
	up := strings.ToUpper(word)
	if canonical, ok := keywordAliases[up]; ok {
		return canonical
	}
	if _, ok := keywords[up]; ok {
		return up
	}
	return ""
}

// IsKeyword reports whether word is a keyword in any mode.
func IsKeyword(word string) bool {
	return lookupKeyword(word) != ""
}

// IsReserved reports whether word cannot be used as an unquoted identifier
// in ANSI mode.
func IsReserved(word string) bool {
	kw := lookupKeyword(word)
	if kw == "" {
		return false
	}
	return keywords[kw] != nonReserved
}

// Keywords returns the canonical keyword names in sorted order.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// keywordAsIdentifier decides whether the keyword kw may stand where an
// identifier is expected.
func keywordAsIdentifier(kw string, ansi, strict bool) bool {
	class := keywords[kw]
	if ansi {
		return class == nonReserved
	}
	if strict {
		return class != strictNonReserved
	}
	return true
}
