package locale

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
)

// Loader 按语言标识加载语言包。语言包不存在时必须返回错误，不允许返回空映射充数。
type Loader interface {
	Load(ctx context.Context, l Locale) (Messages, error)
}

// LoaderFunc 函数适配器
type LoaderFunc func(ctx context.Context, l Locale) (Messages, error)

func (f LoaderFunc) Load(ctx context.Context, l Locale) (Messages, error) {
	return f(ctx, l)
}

// FSLoader 从文件系统读取 <locale>.toml，只接受目录内的语言
type FSLoader struct {
	fsys    fs.FS
	dir     string
	catalog *Catalog
}

// NewFSLoader dir 为语言包所在目录，"." 表示根目录
func NewFSLoader(fsys fs.FS, dir string, catalog *Catalog) *FSLoader {
	if dir == "" {
		dir = "."
	}
	return &FSLoader{fsys: fsys, dir: dir, catalog: catalog}
}

func (f *FSLoader) Load(ctx context.Context, l Locale) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.catalog != nil && !f.catalog.Supported(l) {
		return nil, &NotFoundError{Locale: l}
	}

	name := path.Join(f.dir, string(l)+".toml")
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, &NotFoundError{Locale: l, Cause: err}
	}

	var msgs map[string]any
	if err := toml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return Messages(msgs), nil
}

// MapLoader 内存中的语言包集合。返回副本，调用方可以随意修改。
type MapLoader map[Locale]Messages

func (m MapLoader) Load(ctx context.Context, l Locale) (Messages, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	msgs, ok := m[l]
	if !ok {
		return nil, &NotFoundError{Locale: l}
	}
	return msgs.Clone(), nil
}
