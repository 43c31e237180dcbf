/*
Package lenbucket groups a word list by word length and writes the groups out as
a JSON document.

The input is a plain text file with one word per line. Trailing whitespace is
removed from each line and the word is appended to the bucket for its length,
counted in characters. There are always 15 buckets; bucket 0 holds the one
letter words and bucket 14 holds the fifteen letter words. A word that is empty
or longer than 15 characters stops the load with a *LengthError.

The output looks like this, indented with four spaces:

	{
	    "dictionary": [
	        [
	            "a"
	        ],
	        [],
	        ...
	    ]
	}

In general you call Load() on the word list, then Save() on the Table it
returns. Decode() and LoadDocument() read such a document back, and a Lexicon
built from the Table answers whether a guess is a known word of a given length,
which is what a word game needs from the file.
*/
package lenbucket
