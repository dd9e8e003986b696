// Package messages 内置的语言包，每个语言一个 <locale>.toml
package messages

import "embed"

//go:embed *.toml
var FS embed.FS
