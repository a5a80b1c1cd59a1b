// Package xmldoc 提供项目描述文件所需的最小XML文档操作能力。
// 它只做结构层面的解析、查询与修改，不包含任何项目语义。
package xmldoc

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// ErrParse 表示XML文档无法解析
var ErrParse = errors.New("invalid xml document")

// Document 持有一棵解析后的XML树
type Document struct {
	doc *etree.Document
}

// Element 是树中单个元素的句柄
type Element struct {
	el *etree.Element
}

// Parse 将字节内容解析为XML文档
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: missing root element", ErrParse)
	}
	return &Document{doc: doc}, nil
}

// Root 返回根元素
func (d *Document) Root() *Element {
	return &Element{el: d.doc.Root()}
}

// FindAll 按文档顺序递归查找根下所有指定标签的元素
func (d *Document) FindAll(tag string) []*Element {
	return findAll(d.doc.Root(), tag)
}

// CreateElement 创建一个游离的元素，需要再挂到树上
func (d *Document) CreateElement(tag string) *Element {
	return &Element{el: etree.NewElement(tag)}
}

// Serialize 将文档序列化为字节内容，保留未知的元素与属性
func (d *Document) Serialize() ([]byte, error) {
	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("序列化XML文档失败: %w", err)
	}
	return data, nil
}

// FindAll 按文档顺序递归查找当前元素下所有指定标签的元素
func (e *Element) FindAll(tag string) []*Element {
	return findAll(e.el, tag)
}

func findAll(el *etree.Element, tag string) []*Element {
	var result []*Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			result = append(result, &Element{el: child})
		}
		result = append(result, findAll(child, tag)...)
	}
	return result
}

// Tag 返回元素标签名
func (e *Element) Tag() string {
	return e.el.Tag
}

// Attr 获取属性值，属性不存在时第二个返回值为false
func (e *Element) Attr(name string) (string, bool) {
	attr := e.el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// SetAttr 设置属性值，已存在时覆盖
func (e *Element) SetAttr(name string, value string) {
	e.el.CreateAttr(name, value)
}

// Text 返回元素的文本内容
func (e *Element) Text() string {
	return e.el.Text()
}

// SetText 替换元素的文本内容
func (e *Element) SetText(value string) {
	e.el.SetText(value)
}

// AppendChild 将子元素追加到当前元素末尾
func (e *Element) AppendChild(child *Element) {
	e.el.AddChild(child.el)
}

// ReplaceChild 将子元素原位替换为新元素，old不是当前元素的子节点时返回false
func (e *Element) ReplaceChild(old *Element, repl *Element) bool {
	if old.el.Parent() != e.el {
		return false
	}
	index := old.el.Index()
	e.el.RemoveChild(old.el)
	e.el.InsertChildAt(index, repl.el)
	return true
}

// Parent 返回父元素，根元素返回nil
func (e *Element) Parent() *Element {
	parent := e.el.Parent()
	if parent == nil {
		return nil
	}
	return &Element{el: parent}
}
