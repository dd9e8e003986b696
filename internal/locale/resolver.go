// Package locale 语言包的加载与合并。
//
// Resolver 以一张显式的回退表描述语言之间的覆盖关系：
//
//	zh*    : zh-tw < zh-sg < 请求的语言
//	其他   : en-nz < 上一步的结果（请求 en-nz 本身时不再合并）
//
// 左侧为底，右侧覆盖左侧。
package locale

import (
	"context"
	"strings"
)

// FallbackRule 前缀匹配的语言先叠加 Chain（按顺序，后者覆盖前者），再叠加请求的语言
type FallbackRule struct {
	Prefix string
	Chain  []Locale
}

// FallbackPolicy 回退表。Base 是通用底包，除 Base 本身外所有结果都合并在它之上。
type FallbackPolicy struct {
	Rules []FallbackRule
	Base  Locale
}

// DefaultPolicy 站点使用的回退表
func DefaultPolicy() FallbackPolicy {
	return FallbackPolicy{
		Rules: []FallbackRule{
			{Prefix: "zh", Chain: []Locale{ChineseTW, ChineseSG}},
		},
		Base: DefaultBase,
	}
}

// Resolver 无状态，可并发使用
type Resolver struct {
	loader Loader
	policy FallbackPolicy
}

// NewResolver 创建解析器
func NewResolver(loader Loader, policy FallbackPolicy) *Resolver {
	return &Resolver{loader: loader, policy: policy}
}

// Resolve 加载 l 并按回退表合并。任何一次加载失败都返回 *NotFoundError，不返回部分结果。
func (r *Resolver) Resolve(ctx context.Context, l Locale) (Messages, error) {
	result, err := r.load(ctx, l)
	if err != nil {
		return nil, err
	}

	for _, rule := range r.policy.Rules {
		if !strings.HasPrefix(string(l), rule.Prefix) || len(rule.Chain) == 0 {
			continue
		}
		chain, err := r.loadChain(ctx, rule.Chain)
		if err != nil {
			return nil, err
		}
		result = Merge(chain, result)
	}

	// 请求的就是底包时直接返回
	if l == r.policy.Base || r.policy.Base == "" {
		return result, nil
	}

	base, err := r.load(ctx, r.policy.Base)
	if err != nil {
		return nil, err
	}
	return Merge(base, result), nil
}

func (r *Resolver) loadChain(ctx context.Context, chain []Locale) (Messages, error) {
	acc, err := r.load(ctx, chain[0])
	if err != nil {
		return nil, err
	}
	for _, l := range chain[1:] {
		next, err := r.load(ctx, l)
		if err != nil {
			return nil, err
		}
		acc = Merge(acc, next)
	}
	return acc, nil
}

func (r *Resolver) load(ctx context.Context, l Locale) (Messages, error) {
	msgs, err := r.loader.Load(ctx, l)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, notFound(l, err)
	}
	if msgs == nil {
		msgs = Messages{}
	}
	return msgs, nil
}
