// Package wordfreq counts the words of a text and reports the most frequent
// ones.
//
// Quick start:
//
//	c := wordfreq.New(wordfreq.WithTopK(10))
//
//	rep, err := c.CountFile("book.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range rep.Words {
//	    fmt.Println(w.Word, w.Count)
//	}
//
// A word is a maximal run of ASCII letters and apostrophes, folded to upper
// case and cut to 19 characters. Everything else separates words. The
// Counter is safe for concurrent use.
package wordfreq
