package live

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>weave: {{.Demo}}</title>
</head>
<body>
<main id="app">{{.Markup}}</main>
<script>
(function() {
    'use strict';

    var app = document.getElementById('app');
    var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(protocol + '//' + location.host + '/ws');

    function pathOf(el) {
        var path = [];
        while (el && el !== app) {
            var i = 0;
            for (var s = el.previousElementSibling; s; s = s.previousElementSibling) i++;
            path.unshift(i);
            el = el.parentElement;
        }
        return el === app ? path.join('/') : null;
    }

    function nodeAt(path) {
        var el = app;
        path.split('/').forEach(function(i) {
            if (el && i !== '') el = el.children[+i];
        });
        return el;
    }

    function send(type, target, value) {
        var path = pathOf(target);
        if (path === null || ws.readyState !== WebSocket.OPEN) return;
        ws.send(JSON.stringify({type: type, path: path, value: value}));
    }

    app.addEventListener('click', function(e) { send('click', e.target); });
    app.addEventListener('input', function(e) { send('input', e.target, e.target.value); });

    ws.onmessage = function(e) {
        var msg = JSON.parse(e.data);
        if (msg.type === 'error') {
            console.error('[weave]', msg.error);
            return;
        }
        var focused = pathOf(document.activeElement);
        var caret = document.activeElement && document.activeElement.selectionStart;
        app.innerHTML = msg.html;
        if (focused) {
            var el = nodeAt(focused);
            if (el && el.focus) {
                el.focus();
                if (caret != null && el.setSelectionRange) el.setSelectionRange(caret, caret);
            }
        }
    };
})();
</script>
</body>
</html>
`))

func writePage(w io.Writer, demo, markup string) error {
	return pageTemplate.Execute(w, struct {
		Demo   string
		Markup template.HTML
	}{demo, template.HTML(markup)})
}
