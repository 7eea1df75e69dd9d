/*
Package csf reads and writes CSF string table files, the binary localized
string format used by Westwood-era real-time strategy games.

A CSF file holds an ordered sequence of labels. Each label names one or more
string records, and each record carries a UTF-16LE text payload that is stored
bitwise-complemented on disk. Records tagged "WRTS" additionally carry a raw
auxiliary text value, historically a reference to a speech file.

# Basic Usage

Loading a table:

	table, err := csf.Load("ra2.csf")
	if err != nil {
		log.Fatal(err)
	}

	if label, ok := table.Lookup("GUI:OK"); ok {
		fmt.Println(label.Records[0].Text)
	}

Building and saving a table:

	table := csf.NewStringTable()
	table.AddLabel("GUI:OK", "OK")
	table.AddLabel("GUI:Cancel", "Cancel")

	if err := table.Save("generated.csf"); err != nil {
		log.Fatal(err)
	}

# Format Notes

The declared label and string counts in the file header are informational:
the reader parses labels until the stream ends, and the writer always
recomputes both counts from the actual label sequence. Language ids outside
the range known to the format load as [LanguageUnknown].
*/
package csf
