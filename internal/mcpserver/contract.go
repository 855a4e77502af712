package mcpserver

// FilenameFormat describes how note file names are built, for LLM consumers
// that create, find or rename notes.
const FilenameFormat = `# Note File Name Format

Every note is a single file in one flat directory. Its name carries all metadata:

` + "```" + `
<identifier>[--<title>][__<keyword>[_<keyword>...]].<extension>
` + "```" + `

## Fields

1. **identifier** (required): creation time as ` + "`" + `YYYYMMDDThhmmss` + "`" + `,
   e.g. ` + "`" + `20240322T131856` + "`" + `. Unique within the directory and never changed
   by a rename. Sorting names sorts notes by creation time.
2. **title** (optional): lowercase ASCII letters and digits in words joined by a
   single ` + "`" + `-` + "`" + `. Punctuation and spaces collapse to one hyphen; accents are
   stripped; other characters are dropped.
3. **keywords** (optional): lowercase ASCII letters and digits only, joined by
   ` + "`" + `_` + "`" + `. Each keyword appears once and keeps the order it was given in.
4. **extension** (required): lowercase letters and digits, e.g. ` + "`" + `md` + "`" + `,
   ` + "`" + `org` + "`" + `, ` + "`" + `txt` + "`" + `, ` + "`" + `pdf` + "`" + `.

## Rules

- Pass free-form titles and keywords to the tools. They are sanitized for you.
- Do not build file names by hand; use ` + "`" + `create_note` + "`" + ` and ` + "`" + `rename_note` + "`" + `.
- Files that do not follow this scheme are ignored by searches and keyword listings.
- Renames never overwrite an existing file.

## Example

` + "```" + `
create_note(title: "Some Title!", keywords: "Keyword1 keyword1 Keyword2", extension: "md")
=> 20240322T131856--some-title__keyword1_keyword2.md
` + "```" + `
`
