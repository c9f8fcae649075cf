package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if MeasureTextWidth(candidate, font) <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽：按字符拆分
		if MeasureTextWidth(word, font) > maxWidth {
			parts := breakWord(word, font, maxWidth)
			lines = append(lines, parts[:len(parts)-1]...)
			currentLine = parts[len(parts)-1]
			continue
		}
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	if len(lines) == 0 {
		lines = []string{textStr}
	}
	return lines
}

// breakWord 按字符拆分超宽单词（支持多字节字符）
func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var parts []string
	current := ""

	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		char := string(r)
		word = word[size:]

		if current != "" && MeasureTextWidth(current+char, font) > maxWidth {
			parts = append(parts, current)
			current = char
			continue
		}
		current += char
	}

	return append(parts, current)
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
