package el

import "github.com/vango-dev/weave/pkg/node"

// El returns an element node for any tag, including custom elements.
func El(tag string, classes ...string) *Element {
	return node.El(tag, classes...)
}

// IsVoidElement reports whether tag cannot have children.
func IsVoidElement(tag string) bool {
	return node.IsVoid(tag)
}

// =============================================================================
// Container elements
// =============================================================================

func Html(children ...Node) *Element {
	return node.El("html").Children(children...)
}

func Head(children ...Node) *Element {
	return node.El("head").Children(children...)
}

func Body(children ...Node) *Element {
	return node.El("body").Children(children...)
}

func Title(children ...Node) *Element {
	return node.El("title").Children(children...)
}

func Header(children ...Node) *Element {
	return node.El("header").Children(children...)
}

func Footer(children ...Node) *Element {
	return node.El("footer").Children(children...)
}

func Main(children ...Node) *Element {
	return node.El("main").Children(children...)
}

func Nav(children ...Node) *Element {
	return node.El("nav").Children(children...)
}

func Section(children ...Node) *Element {
	return node.El("section").Children(children...)
}

func Article(children ...Node) *Element {
	return node.El("article").Children(children...)
}

func Aside(children ...Node) *Element {
	return node.El("aside").Children(children...)
}

func Address(children ...Node) *Element {
	return node.El("address").Children(children...)
}

func H1(children ...Node) *Element {
	return node.El("h1").Children(children...)
}

func H2(children ...Node) *Element {
	return node.El("h2").Children(children...)
}

func H3(children ...Node) *Element {
	return node.El("h3").Children(children...)
}

func H4(children ...Node) *Element {
	return node.El("h4").Children(children...)
}

func H5(children ...Node) *Element {
	return node.El("h5").Children(children...)
}

func H6(children ...Node) *Element {
	return node.El("h6").Children(children...)
}

func Hgroup(children ...Node) *Element {
	return node.El("hgroup").Children(children...)
}

func Div(children ...Node) *Element {
	return node.El("div").Children(children...)
}

func P(children ...Node) *Element {
	return node.El("p").Children(children...)
}

func Span(children ...Node) *Element {
	return node.El("span").Children(children...)
}

func Pre(children ...Node) *Element {
	return node.El("pre").Children(children...)
}

func Blockquote(children ...Node) *Element {
	return node.El("blockquote").Children(children...)
}

func Ul(children ...Node) *Element {
	return node.El("ul").Children(children...)
}

func Ol(children ...Node) *Element {
	return node.El("ol").Children(children...)
}

func Li(children ...Node) *Element {
	return node.El("li").Children(children...)
}

func Dl(children ...Node) *Element {
	return node.El("dl").Children(children...)
}

func Dt(children ...Node) *Element {
	return node.El("dt").Children(children...)
}

func Dd(children ...Node) *Element {
	return node.El("dd").Children(children...)
}

func Figure(children ...Node) *Element {
	return node.El("figure").Children(children...)
}

func Figcaption(children ...Node) *Element {
	return node.El("figcaption").Children(children...)
}

func A(children ...Node) *Element {
	return node.El("a").Children(children...)
}

func Strong(children ...Node) *Element {
	return node.El("strong").Children(children...)
}

func Em(children ...Node) *Element {
	return node.El("em").Children(children...)
}

func B(children ...Node) *Element {
	return node.El("b").Children(children...)
}

func I(children ...Node) *Element {
	return node.El("i").Children(children...)
}

func U(children ...Node) *Element {
	return node.El("u").Children(children...)
}

func S(children ...Node) *Element {
	return node.El("s").Children(children...)
}

func Small(children ...Node) *Element {
	return node.El("small").Children(children...)
}

func Mark(children ...Node) *Element {
	return node.El("mark").Children(children...)
}

func Sub(children ...Node) *Element {
	return node.El("sub").Children(children...)
}

func Sup(children ...Node) *Element {
	return node.El("sup").Children(children...)
}

func Code(children ...Node) *Element {
	return node.El("code").Children(children...)
}

func Kbd(children ...Node) *Element {
	return node.El("kbd").Children(children...)
}

func Samp(children ...Node) *Element {
	return node.El("samp").Children(children...)
}

func Abbr(children ...Node) *Element {
	return node.El("abbr").Children(children...)
}

func Time(children ...Node) *Element {
	return node.El("time").Children(children...)
}

func Cite(children ...Node) *Element {
	return node.El("cite").Children(children...)
}

func Q(children ...Node) *Element {
	return node.El("q").Children(children...)
}

func Dfn(children ...Node) *Element {
	return node.El("dfn").Children(children...)
}

func DataElement(children ...Node) *Element {
	return node.El("data").Children(children...)
}

func Form(children ...Node) *Element {
	return node.El("form").Children(children...)
}

func Textarea(children ...Node) *Element {
	return node.El("textarea").Children(children...)
}

func Select(children ...Node) *Element {
	return node.El("select").Children(children...)
}

func Option(children ...Node) *Element {
	return node.El("option").Children(children...)
}

func Optgroup(children ...Node) *Element {
	return node.El("optgroup").Children(children...)
}

func Button(children ...Node) *Element {
	return node.El("button").Children(children...)
}

func Label(children ...Node) *Element {
	return node.El("label").Children(children...)
}

func Fieldset(children ...Node) *Element {
	return node.El("fieldset").Children(children...)
}

func Legend(children ...Node) *Element {
	return node.El("legend").Children(children...)
}

func Datalist(children ...Node) *Element {
	return node.El("datalist").Children(children...)
}

func Output(children ...Node) *Element {
	return node.El("output").Children(children...)
}

func Progress(children ...Node) *Element {
	return node.El("progress").Children(children...)
}

func Meter(children ...Node) *Element {
	return node.El("meter").Children(children...)
}

func Table(children ...Node) *Element {
	return node.El("table").Children(children...)
}

func Thead(children ...Node) *Element {
	return node.El("thead").Children(children...)
}

func Tbody(children ...Node) *Element {
	return node.El("tbody").Children(children...)
}

func Tfoot(children ...Node) *Element {
	return node.El("tfoot").Children(children...)
}

func Tr(children ...Node) *Element {
	return node.El("tr").Children(children...)
}

func Th(children ...Node) *Element {
	return node.El("th").Children(children...)
}

func Td(children ...Node) *Element {
	return node.El("td").Children(children...)
}

func Caption(children ...Node) *Element {
	return node.El("caption").Children(children...)
}

func Colgroup(children ...Node) *Element {
	return node.El("colgroup").Children(children...)
}

func Picture(children ...Node) *Element {
	return node.El("picture").Children(children...)
}

func Video(children ...Node) *Element {
	return node.El("video").Children(children...)
}

func Audio(children ...Node) *Element {
	return node.El("audio").Children(children...)
}

func Canvas(children ...Node) *Element {
	return node.El("canvas").Children(children...)
}

func Details(children ...Node) *Element {
	return node.El("details").Children(children...)
}

func Summary(children ...Node) *Element {
	return node.El("summary").Children(children...)
}

func Dialog(children ...Node) *Element {
	return node.El("dialog").Children(children...)
}

func Menu(children ...Node) *Element {
	return node.El("menu").Children(children...)
}

func Template(children ...Node) *Element {
	return node.El("template").Children(children...)
}

// =============================================================================
// Void elements
// =============================================================================

func Meta() *Element {
	return node.El("meta")
}

func LinkEl() *Element {
	return node.El("link")
}

func Base() *Element {
	return node.El("base")
}

func Hr() *Element {
	return node.El("hr")
}

func Br() *Element {
	return node.El("br")
}

func Wbr() *Element {
	return node.El("wbr")
}

func Input() *Element {
	return node.El("input")
}

func Img() *Element {
	return node.El("img")
}

func Source() *Element {
	return node.El("source")
}

func Track() *Element {
	return node.El("track")
}

func Embed() *Element {
	return node.El("embed")
}

func Col() *Element {
	return node.El("col")
}

func Area() *Element {
	return node.El("area")
}
