package exporter

import "fmt"

const markdownTemplate = `# %s

%s

---

*%s*  
*Date: %s*
`

func (e *Exporter) Markdown(doc Document) []byte {
	return []byte(fmt.Sprintf(markdownTemplate, doc.Title, doc.Summary, generatedBy, e.timestamp()))
}
