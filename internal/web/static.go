package web

// cssContent is the stylesheet layered over the utility classes: reveal
// animations, the page transition and the icon glyphs.
const cssContent = `/* ============ Page transition ============ */
.page-enter {
  animation: page-in var(--page-duration, 0.5s) cubic-bezier(0.68, -0.6, 0.32, 1.6) both;
}
.page-exit {
  animation: page-out var(--page-duration, 0.5s) ease-in both;
}
@keyframes page-in {
  from { opacity: 0; transform: translateY(20px); }
  to   { opacity: 1; transform: translateY(0); }
}
@keyframes page-out {
  from { opacity: 1; transform: translateY(0); }
  to   { opacity: 0; transform: translateY(-20px); }
}

/* ============ Staggered reveal ============ */
.reveal {
  animation: reveal 0.6s ease-out both;
  animation-delay: var(--delay, 0s);
}
@keyframes reveal {
  from { opacity: 0; transform: translateY(20px); }
  to   { opacity: 1; transform: translateY(0); }
}
.skill-bar {
  transform-origin: left;
  animation: grow 1s ease-out both;
  animation-delay: var(--delay, 0s);
}
@keyframes grow {
  from { transform: scaleX(0); }
  to   { transform: scaleX(1); }
}

/* ============ Typing caret ============ */
.caret { animation: blink 1s step-end infinite; margin-left: 2px; }
@keyframes blink { 50% { opacity: 0; } }

/* ============ Navigation ============ */
.nav-menu-toggle:checked ~ .nav-links {
  display: flex;
  flex-direction: column;
  position: absolute;
  top: 4rem;
  left: 0;
  right: 0;
  padding: 1rem;
  background: inherit;
}

/* ============ Certifications ============ */
.flip-card { perspective: 1000px; transition: transform 0.6s; }
.flip-card.flipped > div { animation: flip 0.6s ease both; }
@keyframes flip {
  from { transform: rotateY(-180deg); }
  to   { transform: rotateY(0); }
}

/* ============ Toasts ============ */
.toast { position: relative; animation: reveal 0.3s ease-out both; }
.toast-dismiss { position: absolute; top: 0.5rem; right: 0.75rem; }
.toast-dismiss button { background: none; border: 0; font-size: 1.25rem; cursor: pointer; color: inherit; }

/* ============ Code snippets ============ */
.snippet pre { padding: 1rem; border-radius: 0.5rem; overflow-x: auto; font-size: 0.85rem; }

/* ============ Icons ============ */
.icon { display: inline-block; width: 1.25rem; text-align: center; font-style: normal; }
.icon-mail::before { content: "\2709"; }
.icon-phone::before { content: "\260E"; }
.icon-map-pin::before { content: "\2316"; }
.icon-briefcase::before { content: "\1F4BC"; }
.icon-graduation-cap::before { content: "\1F393"; }
.icon-linkedin::before { content: "in"; font-weight: 700; }
.icon-github::before { content: "\2325"; }
.icon-test-tube::before { content: "\1F9EA"; }
.icon-bug::before { content: "\1F41B"; }
.icon-code::before { content: "</>"; }
.icon-activity::before { content: "\2637"; }

@media (prefers-reduced-motion: reduce) {
  .page-enter, .page-exit, .reveal, .skill-bar, .caret, .toast { animation: none; }
}
`

// jsContent applies live session events pushed over the websocket.
const jsContent = `(function() {
  'use strict';

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var tab = document.body.getAttribute('data-tab') || '';
  var ws;
  var retries = 0;

  // A copied link must open a fresh tab, so the tab id stays out of the
  // address bar.
  if (location.search.indexOf('tab=') !== -1 && window.history.replaceState) {
    history.replaceState(null, '', location.pathname + location.hash);
  }

  function connect() {
    ws = new WebSocket(proto + location.host + '/ws/live?tab=' + encodeURIComponent(tab));
    ws.onopen = function() { retries = 0; };
    ws.onmessage = function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      handle(msg);
    };
    ws.onclose = function() {
      if (retries++ < 5) setTimeout(connect, 1000 * retries);
    };
  }

  function handle(msg) {
    switch (msg.kind) {
      case 'typing': typing(msg.data); break;
      case 'toast': addToast(msg.data); break;
      case 'toast_dismissed': removeToast(msg.data); break;
      case 'theme': theme(msg.data); break;
      case 'contact': contact(msg.data); break;
      case 'route': break;
      case 'error': console.warn('folio:', msg.data); break;
    }
  }

  function typing(state) {
    var el = document.getElementById('typed');
    if (!el) return;
    el.textContent = state.typed;
    var caret = el.parentNode.querySelector('.caret');
    if (state.done && caret) caret.remove();
  }

  function addToast(t) {
    var list = document.getElementById('toasts');
    if (!list || list.querySelector('[data-toast-id="' + t.id + '"]')) return;
    var li = document.createElement('li');
    li.className = 'toast toast-' + t.variant + ' rounded-lg shadow-lg p-4 ' +
      (t.variant === 'destructive' ? 'bg-red-600 text-white' : 'bg-white dark:bg-gray-800');
    li.setAttribute('data-toast-id', t.id);
    var title = document.createElement('div');
    title.className = 'font-semibold';
    title.textContent = t.title;
    li.appendChild(title);
    if (t.description) {
      var desc = document.createElement('div');
      desc.className = 'text-sm opacity-90';
      desc.textContent = t.description;
      li.appendChild(desc);
    }
    var btn = document.createElement('button');
    btn.className = 'toast-dismiss';
    btn.setAttribute('aria-label', 'Dismiss');
    btn.innerHTML = '&times;';
    btn.onclick = function() {
      fetch('/api/toasts/' + encodeURIComponent(t.id) + '/dismiss', {
        method: 'POST',
        credentials: 'same-origin',
        headers: { 'X-Folio-Tab': tab }
      });
    };
    li.appendChild(btn);
    list.appendChild(li);
  }

  function removeToast(t) {
    var el = document.querySelector('[data-toast-id="' + t.id + '"]');
    if (el) el.remove();
  }

  function theme(state) {
    document.documentElement.classList.toggle('dark', state.dark);
    document.documentElement.setAttribute('data-theme', state.theme);
  }

  var buttonClasses = {
    idle: 'bg-gradient-to-r from-blue-600 to-purple-600',
    submitting: 'bg-gray-400 cursor-not-allowed',
    submitted: 'bg-green-600 hover:bg-green-700'
  };
  var buttonLabels = {
    idle: 'Send Message',
    submitting: 'Sending...',
    submitted: '\u2713 Message Sent!'
  };

  function contact(state) {
    var form = document.getElementById('contact-form');
    var button = document.getElementById('contact-submit');
    if (!form || !button) return;
    var prev = form.getAttribute('data-phase');
    form.setAttribute('data-phase', state.phase);
    Object.keys(buttonClasses).forEach(function(phase) {
      buttonClasses[phase].split(' ').forEach(function(c) { button.classList.remove(c); });
      button.classList.remove('phase-' + phase);
    });
    buttonClasses[state.phase].split(' ').forEach(function(c) { button.classList.add(c); });
    button.classList.add('phase-' + state.phase);
    button.disabled = state.phase === 'submitting';
    button.textContent = buttonLabels[state.phase];
    if (state.phase === 'submitted' && prev !== 'submitted') {
      ['name', 'email', 'subject', 'message'].forEach(function(name) {
        if (form.elements[name]) form.elements[name].value = state.fields[name] || '';
      });
    }
  }

  connect();
})();
`

// Stylesheet returns the site stylesheet served at /assets/folio.css.
func Stylesheet() []byte { return []byte(cssContent) }
