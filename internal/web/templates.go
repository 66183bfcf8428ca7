package web

// layoutTemplate is the page shell: navbar, the routed page, footer and
// toasts.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en" class="{{.ThemeClass}}" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <script src="https://cdn.tailwindcss.com"></script>
  <script>tailwind.config = { darkMode: 'class' }</script>
  <link rel="stylesheet" href="/assets/folio.css">
</head>
<body class="bg-white dark:bg-gray-900 text-gray-900 dark:text-white transition-colors duration-300" data-page="{{.PageID}}" data-tab="{{.SessionID}}">
  <div class="min-h-screen flex flex-col">
    {{template "navbar" .}}
    <main class="flex-grow page-enter" style="--page-duration: {{seconds .Transition.Motion.Duration}}">
      {{if .NotFound}}{{template "notfound" .}}
      {{else if eq .PageID "home"}}{{template "home" .Page}}
      {{else if eq .PageID "about"}}{{template "about" .Page}}
      {{else if eq .PageID "skills"}}{{template "skills" .}}
      {{else if eq .PageID "experience"}}{{template "experience" .Page}}
      {{else if eq .PageID "projects"}}{{template "projects" .}}
      {{else if eq .PageID "certifications"}}{{template "certifications" .}}
      {{else if eq .PageID "education"}}{{template "education" .Page}}
      {{else if eq .PageID "contact"}}{{template "contact" .}}
      {{end}}
    </main>
    {{template "footer" .Footer}}
  </div>
  {{template "toasts" .}}
  {{if .Live}}<script src="/assets/folio.js"></script>{{end}}
</body>
</html>{{end}}

{{define "navbar"}}<nav class="fixed top-0 w-full z-50 bg-white/80 dark:bg-gray-900/80 backdrop-blur-md border-b border-gray-200 dark:border-gray-700">
  <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex justify-between items-center h-16">
    <a href="/" class="flex items-center space-x-2">
      <span class="w-10 h-10 bg-gradient-to-br from-blue-600 to-purple-600 rounded-lg flex items-center justify-center text-white font-bold">{{.Footer.Initials}}</span>
      <span class="hidden sm:block font-semibold">{{.Footer.Name}}</span>
    </a>
    <input type="checkbox" id="nav-menu" class="nav-menu-toggle hidden">
    <label for="nav-menu" class="md:hidden p-2 rounded-lg bg-gray-100 dark:bg-gray-800" aria-label="Toggle menu">&#9776;</label>
    <ul class="nav-links hidden md:flex items-center space-x-1">
      {{range .Nav}}<li><a href="{{.Path}}" class="nav-link px-3 py-2 rounded-lg text-sm font-medium{{if .Active}} active text-blue-600 dark:text-blue-400 bg-blue-50 dark:bg-blue-900/20{{else}} text-gray-700 dark:text-gray-300 hover:text-blue-600{{end}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a></li>
      {{end}}
    </ul>
    <form method="post" action="/theme/toggle" class="theme-toggle-form">
      <input type="hidden" name="back" value="{{.Route.Path}}">
      <input type="hidden" name="tab" value="{{.SessionID}}">
      <button type="submit" id="theme-toggle" class="p-2 rounded-lg bg-gray-100 dark:bg-gray-800" aria-label="Toggle dark mode">{{if .Dark}}&#9728;{{else}}&#9790;{{end}}</button>
    </form>
  </div>
</nav>{{end}}

{{define "footer"}}<footer class="bg-gray-900 text-white">
  <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12 grid grid-cols-1 md:grid-cols-4 gap-8">
    <div class="md:col-span-2 reveal" style="--delay: {{seconds .Stagger.DelayChildren}}">
      <div class="flex items-center space-x-2 mb-4">
        <span class="w-10 h-10 bg-gradient-to-br from-blue-600 to-purple-600 rounded-lg flex items-center justify-center font-bold">{{.Initials}}</span>
        <div><div class="text-xl font-bold">{{.Name}}</div><div class="text-gray-400 text-sm">{{.Designation}}</div></div>
      </div>
      <p class="text-gray-400 mb-6 max-w-md">{{.Blurb}}</p>
      <ul class="space-y-2 text-gray-400 text-sm">
        <li><span class="icon icon-map-pin" aria-hidden="true"></span> {{.Location}}</li>
        <li><span class="icon icon-mail" aria-hidden="true"></span> <a href="mailto:{{.Email}}">{{.Email}}</a></li>
        <li><span class="icon icon-phone" aria-hidden="true"></span> <a href="tel:{{.Phone}}">{{.Phone}}</a></li>
      </ul>
    </div>
    <div>
      <h3 class="text-lg font-semibold mb-4">Quick Links</h3>
      <ul class="space-y-2">{{range .Nav}}<li><a href="{{.Path}}" class="text-gray-400 hover:text-white">{{.Label}}</a></li>{{end}}</ul>
    </div>
    <div>
      <h3 class="text-lg font-semibold mb-4">Services</h3>
      <ul class="space-y-2 text-gray-400">{{range .Services}}<li>{{.}}</li>{{end}}</ul>
    </div>
  </div>
  <div class="border-t border-gray-800 max-w-7xl mx-auto px-4 py-6 flex flex-col md:flex-row justify-between items-center gap-4">
    <p class="text-gray-400 text-sm">{{.Copyright}}</p>
    <div class="flex space-x-4">{{range .Social}}<a href="{{.URL}}" class="social-link" rel="noopener noreferrer" target="_blank" aria-label="{{.Name}}"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span></a>{{end}}</div>
  </div>
</footer>{{end}}

{{define "toasts"}}<ol id="toasts" class="fixed bottom-4 right-4 z-50 space-y-2 w-80" aria-live="polite">
  {{range .Toasts}}<li class="toast toast-{{.Variant}} rounded-lg shadow-lg p-4 {{if eq .Variant "destructive"}}bg-red-600 text-white{{else}}bg-white dark:bg-gray-800{{end}}" data-toast-id="{{.ID}}">
    <div class="font-semibold">{{.Title}}</div>
    {{if .Description}}<div class="text-sm opacity-90">{{.Description}}</div>{{end}}
    <form method="post" action="/toasts/{{.ID}}/dismiss" class="toast-dismiss">
      <input type="hidden" name="back" value="{{$.Route.Path}}">
      <input type="hidden" name="tab" value="{{$.SessionID}}">
      <button type="submit" aria-label="Dismiss">&times;</button>
    </form>
  </li>
  {{end}}
</ol>{{end}}

{{define "notfound"}}<section class="pt-32 pb-20 text-center">
  <h1 class="text-5xl font-bold mb-4">404</h1>
  <p class="text-xl text-gray-600 dark:text-gray-400 mb-8">Page not found</p>
  <a href="/" class="px-6 py-3 bg-blue-600 text-white rounded-lg">Back to Home</a>
</section>{{end}}

{{define "header"}}<div class="text-center mb-16 reveal">
  <h1 class="text-4xl md:text-5xl font-bold mb-6">{{.Title}}</h1>
  <p class="text-xl text-gray-600 dark:text-gray-400 max-w-3xl mx-auto">{{.Intro}}</p>
</div>{{end}}

{{define "cta"}}<div class="text-center mt-16 reveal">
  <a href="{{.}}" class="inline-flex items-center px-8 py-4 bg-gradient-to-r from-blue-600 to-purple-600 text-white font-semibold rounded-lg">Let's Work Together</a>
</div>{{end}}`

// pagesTemplate holds one template per routed page. Each receives the page's
// view model.
const pagesTemplate = `{{define "home"}}<section class="min-h-screen flex items-center pt-16">
  <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid lg:grid-cols-2 gap-12 items-center">
    <div class="space-y-8">
      <p class="reveal text-lg text-blue-600 dark:text-blue-400 font-medium" style="--delay: {{seconds .Stagger.DelayChildren}}">Hello, I'm</p>
      <h1 class="reveal text-5xl lg:text-7xl font-bold bg-gradient-to-r from-blue-600 via-purple-600 to-pink-600 bg-clip-text text-transparent">{{.Name}}</h1>
      <div class="reveal space-y-2">
        <h2 class="text-2xl lg:text-3xl font-semibold">{{.Designation}}</h2>
        <h3 class="text-xl text-gray-600 dark:text-gray-400">{{.Subtitle}}</h3>
      </div>
      <p class="reveal text-lg text-gray-600 dark:text-gray-400 max-w-2xl min-h-[3rem]"><span id="typed" data-text="{{.Tagline}}">{{.Typed}}</span>{{if not .TypingDone}}<span class="caret">|</span>{{end}}</p>
      <div class="reveal flex flex-col sm:flex-row gap-4">
        <a href="{{.Resume}}" download class="px-8 py-4 bg-gradient-to-r from-blue-600 to-purple-600 text-white font-semibold rounded-lg">Download Resume</a>
        <a href="{{.ContactPath}}" class="px-8 py-4 border-2 border-blue-600 text-blue-600 dark:text-blue-400 font-semibold rounded-lg">Get In Touch</a>
      </div>
      <ul class="flex flex-wrap gap-4">
        {{range .Tools}}<li class="reveal px-4 py-2 bg-gray-100 dark:bg-gray-800 rounded-full text-sm" style="--delay: {{seconds .Delay}}">{{.Item}}</li>{{end}}
      </ul>
    </div>
    <div class="hidden lg:block">
      <pre class="code-card rounded-2xl p-8 bg-gray-900 text-green-400 text-sm">{{range .Blocks}}<span class="reveal block" style="--delay: {{seconds .Delay}}">{{.Item}}</span>{{end}}</pre>
    </div>
  </div>
</section>{{end}}

{{define "about"}}<section class="pt-24 pb-16 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "About Me" "Intro" .Intro)}}
  <div class="grid lg:grid-cols-2 gap-16 items-center">
    <img src="{{.ProfileImage}}" alt="{{.Name}}" class="reveal rounded-2xl shadow-2xl w-full max-w-md mx-auto">
    <div class="space-y-6">
      <div class="prose dark:prose-invert">{{.Bio}}</div>
      <div class="grid grid-cols-1 sm:grid-cols-2 gap-4">
        {{range .Cards}}<div class="reveal flex items-center space-x-3 p-4 bg-gray-50 dark:bg-gray-800 rounded-lg" style="--delay: {{seconds .Delay}}">
          <span class="icon icon-{{.Item.Icon}}" aria-hidden="true"></span>
          <div><div class="text-sm text-gray-500">{{.Item.Label}}</div><div class="font-medium">{{.Item.Value}}</div></div>
        </div>{{end}}
      </div>
    </div>
  </div>
  <div class="mt-20 text-center">
    <h2 class="text-3xl font-bold mb-8">{{.BeyondTitle}}</h2>
    <div class="prose dark:prose-invert max-w-4xl mx-auto">{{.Beyond}}</div>
  </div>
  <dl class="mt-16 grid grid-cols-2 md:grid-cols-4 gap-8 text-center">
    {{range .Stats}}<div class="reveal"><dt class="text-sm text-gray-500">{{.Label}}</dt><dd class="text-3xl font-bold text-blue-600">{{.Value}}</dd></div>{{end}}
  </dl>
</section>{{end}}

{{define "skills"}}{{with .Page}}<section class="pt-24 pb-16 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Skills & Expertise" "Intro" .Intro)}}
  <div class="flex flex-wrap justify-center gap-4 mb-12">
    {{range .Categories}}<form method="post" action="/skills/category">
      <input type="hidden" name="tab" value="{{$.SessionID}}">
      <input type="hidden" name="category" value="{{.ID}}">
      <button type="submit" class="flex items-center space-x-2 px-6 py-3 rounded-lg font-medium{{if .Active}} active bg-gradient-to-r {{.Color}} text-white shadow-lg{{else}} bg-gray-100 dark:bg-gray-800{{end}}"{{if .Active}} aria-pressed="true"{{end}}>
        <span class="icon icon-{{.Icon}}" aria-hidden="true"></span><span>{{.Name}}</span>
      </button>
    </form>{{end}}
  </div>
  {{if .Tools}}<div class="grid grid-cols-2 md:grid-cols-3 lg:grid-cols-4 gap-6">
    {{range .Tools}}<div class="reveal p-6 bg-gray-50 dark:bg-gray-800 rounded-xl text-center" style="--delay: {{seconds .Delay}}">
      <div class="text-4xl mb-4">{{.Item.Icon}}</div>
      <h3 class="font-semibold mb-2">{{.Item.Name}}</h3>
      <p class="text-sm text-gray-600 dark:text-gray-400">{{.Item.Description}}</p>
    </div>{{end}}
  </div>{{else}}<div class="grid md:grid-cols-2 gap-8">
    {{range .Levels}}<div class="reveal p-6 bg-gray-50 dark:bg-gray-800 rounded-xl" style="--delay: {{seconds .Delay}}">
      <div class="flex justify-between mb-2"><h3 class="font-semibold">{{.Item.Name}}</h3><span class="text-blue-600 font-bold">{{.Item.Level}}%</span></div>
      <div class="w-full bg-gray-200 dark:bg-gray-700 rounded-full h-3"><div class="skill-bar h-3 rounded-full bg-gradient-to-r from-blue-500 to-purple-600" style="width: {{.Item.Level}}%; --delay: {{seconds .Delay}}"></div></div>
      <p class="mt-3 text-sm text-gray-600 dark:text-gray-400">{{.Item.Description}}</p>
    </div>{{end}}
  </div>{{end}}
  <div class="mt-20 grid md:grid-cols-3 gap-8">
    {{range .Philosophy}}<div class="reveal p-6 rounded-xl bg-blue-50 dark:bg-blue-900/20"><h3 class="text-xl font-semibold mb-3">{{.Title}}</h3><div class="prose dark:prose-invert text-sm">{{.Body}}</div></div>{{end}}
  </div>
</section>{{end}}{{end}}

{{define "experience"}}<section class="pt-24 pb-16 max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Professional Experience" "Intro" .Intro)}}
  <ol class="relative">
    {{range .Timeline}}<li class="reveal relative pl-12 pb-12" style="--delay: {{seconds .Delay}}">
      {{if not .Item.IsLast}}<span class="timeline-line absolute left-4 top-8 bottom-0 w-0.5 bg-gradient-to-b from-blue-600 to-purple-600"></span>{{end}}
      <span class="absolute left-0 top-0 w-8 h-8 rounded-full bg-gradient-to-br from-blue-600 to-purple-600"></span>
      <div class="p-6 bg-gray-50 dark:bg-gray-800 rounded-xl">
        <h3 class="text-xl font-bold">{{.Item.Title}}</h3>
        <p class="text-blue-600 dark:text-blue-400 font-medium">{{.Item.Company}}</p>
        <p class="text-sm text-gray-500">{{.Item.Period}} &middot; {{.Item.Location}} &middot; {{.Item.Type}}</p>
        <p class="mt-4 text-gray-600 dark:text-gray-400">{{.Item.Description}}</p>
        <h4 class="mt-4 font-semibold">Key Achievements</h4>
        <ul class="mt-2 space-y-1 list-disc pl-5">{{range .Item.Achievements}}<li>{{.}}</li>{{end}}</ul>
      </div>
    </li>{{end}}
  </ol>
  <dl class="grid grid-cols-2 md:grid-cols-4 gap-6 text-center">
    {{range .Stats}}<div class="reveal p-6 bg-gray-50 dark:bg-gray-800 rounded-xl"><dd class="text-3xl font-bold text-blue-600">{{.Value}}</dd><dt class="text-sm text-gray-500">{{.Label}}</dt></div>{{end}}
  </dl>
  {{template "cta" .CTAPath}}
</section>{{end}}

{{define "projects"}}{{with .Page}}<section class="pt-24 pb-16 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Featured Projects" "Intro" .Intro)}}
  <div class="flex flex-wrap justify-center gap-4 mb-12">
    {{range .Filters}}<form method="post" action="/projects/filter">
      <input type="hidden" name="tab" value="{{$.SessionID}}">
      <input type="hidden" name="filter" value="{{.ID}}">
      <button type="submit" class="px-6 py-3 rounded-lg font-medium{{if .Active}} active bg-blue-600 text-white{{else}} bg-gray-100 dark:bg-gray-800{{end}}"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span> {{.Name}}</button>
    </form>{{end}}
  </div>
  <div class="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
    {{range .Cards}}<article class="reveal bg-white dark:bg-gray-800 rounded-xl shadow-lg overflow-hidden" style="--delay: {{seconds .Delay}}">
      <img src="{{.Item.Image}}" alt="{{.Item.Title}}" class="w-full h-48 object-cover">
      <div class="p-6">
        <span class="inline-block px-3 py-1 rounded-full text-xs font-medium {{.Item.BadgeClass}}">{{.Item.Status}}</span>
        <h3 class="mt-3 text-xl font-bold">{{.Item.Title}}</h3>
        <p class="mt-2 text-gray-600 dark:text-gray-400 line-clamp-3">{{.Item.Description}}</p>
        <ul class="mt-4 flex flex-wrap gap-2">{{range .Item.Technologies}}<li class="px-2 py-1 bg-gray-100 dark:bg-gray-700 rounded text-xs">{{.}}</li>{{end}}</ul>
        <form method="post" action="/projects/select" class="mt-4">
          <input type="hidden" name="tab" value="{{$.SessionID}}">
          <input type="hidden" name="id" value="{{.Item.ID}}">
          <button type="submit" class="text-blue-600 dark:text-blue-400 font-medium">View Details</button>
        </form>
      </div>
    </article>{{end}}
  </div>
  {{with .Selected}}<div class="modal fixed inset-0 z-50 flex items-center justify-center p-4 bg-black/50" role="dialog" aria-modal="true" aria-labelledby="project-title">
    <div class="bg-white dark:bg-gray-800 rounded-2xl max-w-3xl w-full max-h-[90vh] overflow-y-auto">
      <img src="{{.Image}}" alt="{{.Title}}" class="w-full h-64 object-cover rounded-t-2xl">
      <div class="p-8">
        <div class="flex justify-between items-start">
          <h2 id="project-title" class="text-3xl font-bold">{{.Title}}</h2>
          <form method="post" action="/projects/close"><input type="hidden" name="tab" value="{{$.SessionID}}"><button type="submit" aria-label="Close">&times;</button></form>
        </div>
        <span class="inline-block mt-2 px-3 py-1 rounded-full text-xs font-medium {{.BadgeClass}}">{{.Status}}</span>
        <p class="mt-4 text-gray-600 dark:text-gray-400">{{.Description}}</p>
        <h3 class="mt-6 text-lg font-semibold">Technologies Used</h3>
        <ul class="mt-2 flex flex-wrap gap-2">{{range .Technologies}}<li class="px-3 py-1 bg-blue-100 dark:bg-blue-900 rounded-full text-sm">{{.}}</li>{{end}}</ul>
        <h3 class="mt-6 text-lg font-semibold">Key Achievements</h3>
        <ul class="mt-2 list-disc pl-5 space-y-1">{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>
        {{if .SnippetHTML}}<div class="mt-6 snippet">{{.SnippetHTML}}</div>{{end}}
        <div class="mt-8 flex gap-4">
          {{if .GitHub}}<a href="{{.GitHub}}" target="_blank" rel="noopener noreferrer" class="px-6 py-3 bg-gray-900 text-white rounded-lg">View Code</a>{{end}}
          {{if .Link}}<a href="{{.Link}}" target="_blank" rel="noopener noreferrer" class="px-6 py-3 bg-blue-600 text-white rounded-lg">Live Demo</a>{{end}}
        </div>
      </div>
    </div>
  </div>{{end}}
  {{template "cta" .CTAPath}}
</section>{{end}}{{end}}

{{define "certifications"}}{{with .Page}}<section class="pt-24 pb-16 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Certifications" "Intro" .Intro)}}
  <div class="grid md:grid-cols-2 lg:grid-cols-3 gap-8">
    {{range .Cards}}<form method="post" action="/certifications/flip" class="reveal" style="--delay: {{seconds .Delay}}">
      <input type="hidden" name="tab" value="{{$.SessionID}}">
      <input type="hidden" name="id" value="{{.Item.ID}}">
      <button type="submit" class="flip-card w-full h-80 text-left{{if .Item.Flipped}} flipped{{end}}" aria-pressed="{{.Item.Flipped}}">
        {{if .Item.Flipped}}<div class="h-full p-6 rounded-xl bg-gradient-to-br from-blue-600 to-purple-600 text-white">
          <h3 class="text-lg font-bold mb-4">Skills Covered</h3>
          <ul class="space-y-2">{{range .Item.Skills}}<li>{{.}}</li>{{end}}</ul>
        </div>{{else}}<div class="h-full rounded-xl overflow-hidden bg-white dark:bg-gray-800 shadow-lg">
          <img src="{{.Item.Image}}" alt="{{.Item.Title}}" class="w-full h-40 object-cover">
          <div class="p-6">
            <span class="inline-block px-3 py-1 rounded-full text-xs font-medium {{.Item.BadgeClass}}">{{if .Item.Upcoming}}Upcoming{{else}}Completed{{end}}</span>
            <h3 class="mt-2 text-lg font-bold">{{.Item.Title}}</h3>
            <p class="text-sm text-gray-500">{{.Item.Issuer}} &middot; {{.Item.Date}}</p>
          </div>
        </div>{{end}}
      </button>
    </form>{{end}}
  </div>
  <dl class="mt-16 grid grid-cols-3 gap-8 text-center">
    <div><dd class="text-4xl font-bold text-green-600">{{.Counters.Completed}}</dd><dt class="text-gray-500">Completed</dt></div>
    <div><dd class="text-4xl font-bold text-orange-600">{{.Counters.InProgress}}</dd><dt class="text-gray-500">In Progress</dt></div>
    <div><dd class="text-4xl font-bold text-blue-600">{{.Counters.Planned}}</dd><dt class="text-gray-500">Planned</dt></div>
  </dl>
  {{template "cta" .CTAPath}}
</section>{{end}}{{end}}

{{define "education"}}<section class="pt-24 pb-16 max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Education" "Intro" .Intro)}}
  <div class="space-y-8">
    {{range .Cards}}<article class="reveal md:flex bg-white dark:bg-gray-800 rounded-xl shadow-lg overflow-hidden" style="--delay: {{seconds .Delay}}">
      <img src="{{.Item.Image}}" alt="{{.Item.Institution}}" class="md:w-1/3 h-48 md:h-auto object-cover">
      <div class="p-6 md:w-2/3">
        <span class="inline-block px-3 py-1 rounded-full text-xs font-medium {{.Item.BadgeClass}}">{{.Item.StatusLabel}}</span>
        <h3 class="mt-2 text-2xl font-bold">{{.Item.Degree}}</h3>
        <p class="text-blue-600 dark:text-blue-400 font-medium">{{.Item.Institution}}</p>
        <p class="text-sm text-gray-500">{{.Item.Period}}{{if .Item.GPA}} &middot; GPA: {{.Item.GPA}}{{end}}{{if .Item.Minor}} &middot; Minor: {{.Item.Minor}}{{end}}</p>
        {{if .Item.Achievements}}<h4 class="mt-4 font-semibold">Achievements</h4><ul class="list-disc pl-5">{{range .Item.Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
        {{if .Item.Focus}}<h4 class="mt-4 font-semibold">Focus Areas</h4><ul class="flex flex-wrap gap-2">{{range .Item.Focus}}<li class="px-3 py-1 bg-gray-100 dark:bg-gray-700 rounded-full text-sm">{{.}}</li>{{end}}</ul>{{end}}
      </div>
    </article>{{end}}
  </div>
  <div class="mt-16 grid md:grid-cols-3 gap-8">
    {{range .Benefits}}<div class="reveal p-6 rounded-xl bg-gray-50 dark:bg-gray-800"><h3 class="text-lg font-semibold mb-2">{{.Title}}</h3><div class="prose dark:prose-invert text-sm">{{.Body}}</div></div>{{end}}
  </div>
  {{template "cta" .CTAPath}}
</section>{{end}}

{{define "contact"}}{{with .Page}}<section class="pt-24 pb-16 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
  {{template "header" (dict "Title" "Get In Touch" "Intro" .Intro)}}
  <div class="grid lg:grid-cols-2 gap-12">
    <div class="space-y-8">
      <ul class="space-y-4">
        {{range .Items}}<li class="reveal flex items-center space-x-4 p-4 bg-gray-50 dark:bg-gray-800 rounded-lg" style="--delay: {{seconds .Delay}}">
          <span class="icon icon-{{.Item.Icon}} {{.Item.Color}}" aria-hidden="true"></span>
          <div><div class="text-sm text-gray-500">{{.Item.Label}}</div><a href="{{.Item.Href}}" class="font-medium">{{.Item.Value}}</a></div>
        </li>{{end}}
      </ul>
      <div class="flex space-x-4">{{range .Social}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="social-link" aria-label="{{.Name}}"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span></a>{{end}}</div>
      <div>
        <h3 class="text-xl font-semibold mb-4">Services I Offer</h3>
        <ul class="grid grid-cols-1 sm:grid-cols-2 gap-2">{{range .Services}}<li class="reveal" style="--delay: {{seconds .Delay}}">{{.Item}}</li>{{end}}</ul>
      </div>
    </div>
    <div class="p-8 bg-white dark:bg-gray-800 rounded-2xl shadow-xl">
      <form id="contact-form" method="post" action="/contact" class="space-y-6" data-phase="{{.Form.Phase}}">
        <input type="hidden" name="tab" value="{{$.SessionID}}">
        <h2 class="text-2xl font-bold">Send a Message</h2>
        <div class="grid sm:grid-cols-2 gap-4">
          <label class="block"><span class="text-sm font-medium">Name *</span><input type="text" name="name" required value="{{.Form.Fields.Name}}" class="mt-1 w-full px-4 py-3 rounded-lg border dark:bg-gray-700"></label>
          <label class="block"><span class="text-sm font-medium">Email *</span><input type="email" name="email" required value="{{.Form.Fields.Email}}" class="mt-1 w-full px-4 py-3 rounded-lg border dark:bg-gray-700"></label>
        </div>
        <label class="block"><span class="text-sm font-medium">Subject *</span><input type="text" name="subject" required value="{{.Form.Fields.Subject}}" class="mt-1 w-full px-4 py-3 rounded-lg border dark:bg-gray-700"></label>
        <label class="block"><span class="text-sm font-medium">Message *</span><textarea name="message" rows="6" required class="mt-1 w-full px-4 py-3 rounded-lg border dark:bg-gray-700">{{.Form.Fields.Message}}</textarea></label>
        <button type="submit" id="contact-submit" class="contact-submit phase-{{.Form.Phase}} w-full py-4 text-white font-semibold rounded-lg {{if eq .Form.Phase "submitted"}}bg-green-600 hover:bg-green-700{{else if eq .Form.Phase "submitting"}}bg-gray-400 cursor-not-allowed{{else}}bg-gradient-to-r from-blue-600 to-purple-600{{end}}"{{if eq .Form.Phase "submitting"}} disabled{{end}}>{{if eq .Form.Phase "submitting"}}Sending...{{else if eq .Form.Phase "submitted"}}&#10003; Message Sent!{{else}}Send Message{{end}}</button>
      </form>
      <p class="mt-6 text-sm text-gray-500">Prefer email? Reach me at <a href="mailto:{{.Email}}" class="text-blue-600">{{.Email}}</a> or <a href="{{.Resume}}" download class="text-blue-600">download my resume</a>.</p>
    </div>
  </div>
</section>{{end}}{{end}}`
