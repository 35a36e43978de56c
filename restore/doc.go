// Package restore turns letter-reversed text back into natural reading order.
//
// Text is split into lines and each non-blank line into whitespace-separated
// words. Every word is classified and handled on its own:
//
//   - URLs (http:// or https://) are kept as is.
//   - A bare "am" or "pm" is kept as is.
//   - Ordinals such as "1st" or "(22nd)," are kept as is.
//   - Clock times such as "12:30PM" keep their digits and get a lower-case meridiem.
//   - Known reversed contractions ("t'nac") are replaced by their canonical
//     spelling ("can't"), with either apostrophe variant and any case.
//   - Any other word has its letters reversed while digits, punctuation and
//     combining marks stay at their positions.
//
// Output lines are rejoined with "\n". Runs of spaces inside a line collapse
// to a single space and leading or trailing spaces of a non-blank line are
// dropped. Blank lines are kept as empty lines.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - An accent in a reversed word stays at its position, so it lands on a
//     different base letter ("éfac" becomes "ćafe", not "café").
//   - Digits are matched as ASCII digits only.
package restore
