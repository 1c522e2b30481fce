// Package lang translates YAML configuration documents into a flat,
// semicolon-terminated assignment language.
//
// # Documents
//
// A document is a tree of [Value]s. The sum type has exactly four cases:
//
//   - [Int]: an integer scalar
//   - [Seq]: an ordered sequence of scalars
//   - [Str]: a string scalar
//   - [*Map]: an ordered mapping of identifiers to values
//
// Identifiers consist of one or more uppercase ASCII letters and nothing
// else, at every nesting depth. YAML input is decoded with
// [github.com/goccy/go-yaml] and converted with [FromNative]; anything that
// does not fit the four cases is rejected with [ErrUnsupportedType].
//
// # Translation
//
// Translation runs in two passes. The first collects every top-level [Int] and
// [Seq] entry into a [Constants] table. The second, [Emit], walks the document
// and produces one assignment per entry:
//
//	NUM: 10                  NUM <- 10;
//	ARR: [1, 2, 3]           ARR <- array(1, 2, 3);
//	NAME: text               NAME <- "text";
//	REF: "@NUM"              REF <- 10;
//	SUB:                     SUB <- {
//	  INNER: 1               INNER <- 1;
//	                         };
//
// A string beginning with "@" is a constant reference. Because the table is
// complete before emission begins, a reference may precede the constant it
// names. Only top-level entries are constants; a name declared inside a
// nested mapping never satisfies a reference.
//
// # Sessions
//
// A [Translator] owns its constant table:
//
//	t := lang.New()
//	out, err := t.TranslateString(ctx, "NUM: 10\nREF: '@NUM'\n")
//	v, err := t.Evaluate("@[NUM]") // lang.Int(10)
//
// # Errors
//
// Every failure aborts translation and no output is returned. Errors derive
// from [ErrParse], [ErrInvalidName], [ErrUnsupportedType],
// [ErrUndefinedConstant], or [ErrReadInput] and can be tested with
// [errors.Is].
package lang
