package web

const (
	cssPath        = "/static/css/site.css"
	siteJSPath     = "/static/js/site.js"
	heroJSPath     = "/static/js/hero.js"
	heroSocketPath = "/ws/hero"
)

// cssContent is the stylesheet for every page.
const cssContent = `/* ============ Variables ============ */
:root {
  --blue-900: #1e3a8a;
  --blue-700: #1d4ed8;
  --blue-600: #2563eb;
  --blue-100: #dbeafe;
  --blue-50: #eff6ff;
  --gray-900: #111827;
  --gray-700: #374151;
  --gray-600: #4b5563;
  --gray-200: #e5e7eb;
  --gray-50: #f9fafb;
  --white: #ffffff;
  --radius: 0.5rem;
  --shadow: 0 4px 6px -1px rgba(0,0,0,0.1), 0 2px 4px -2px rgba(0,0,0,0.1);
  --shadow-lg: 0 10px 15px -3px rgba(0,0,0,0.1), 0 4px 6px -4px rgba(0,0,0,0.1);
  --nav-height: 80px;
}

/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body {
  font-family: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--gray-900);
  line-height: 1.6;
  background: var(--white);
}
img { max-width: 100%; display: block; }
a { color: var(--blue-600); text-decoration: none; }
h1, h2, h3, h4 { line-height: 1.2; }
.container { width: 100%; max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }
.centered { text-align: center; }

/* ============ Buttons ============ */
.btn {
  display: inline-flex; align-items: center; justify-content: center;
  border-radius: var(--radius); font-weight: 600; border: 2px solid transparent;
  cursor: pointer; transition: transform 0.3s ease-out, background 0.3s, color 0.3s;
}
.btn:hover { transform: scale(1.05); }
.btn-sm { padding: 0.25rem 0.75rem; font-size: 0.875rem; }
.btn-md { padding: 0.5rem 1rem; }
.btn-lg { padding: 0.75rem 1.5rem; font-size: 1.125rem; }
.btn-primary { background: var(--blue-600); color: var(--white); }
.btn-primary:hover { background: var(--blue-700); }
.btn-secondary { background: var(--white); color: var(--blue-600); }
.btn-secondary:hover { background: var(--blue-50); }
.btn-outline { border-color: currentColor; color: var(--white); background: transparent; }

/* ============ Navbar ============ */
.navbar {
  position: fixed; top: 0; left: 0; right: 0; z-index: 50;
  height: var(--nav-height); display: flex; flex-direction: column; justify-content: center;
  transition: background 0.3s, box-shadow 0.3s;
}
.navbar.scrolled { background: var(--white); box-shadow: var(--shadow); }
.navbar-inner { display: flex; align-items: center; justify-content: space-between; }
.logo-img { height: 3rem; }
.nav-desktop { display: flex; align-items: center; gap: 1.5rem; }
.nav-link { color: var(--gray-700); font-weight: 500; }
.nav-link.active, .nav-link:hover { color: var(--blue-600); }
.nav-dropdown { position: relative; }
.dropdown-menu {
  position: absolute; top: 100%; left: 0; min-width: 14rem; padding: 0.5rem 0;
  background: var(--white); border-radius: var(--radius); box-shadow: var(--shadow-lg);
  opacity: 0; visibility: hidden; transform: translateY(0.5rem); transition: all 0.2s;
}
.nav-dropdown:hover .dropdown-menu, .nav-dropdown:focus-within .dropdown-menu { opacity: 1; visibility: visible; transform: none; }
.dropdown-menu a { display: block; padding: 0.5rem 1rem; color: var(--gray-700); font-size: 0.875rem; }
.dropdown-menu a:hover { background: var(--blue-50); color: var(--blue-600); }
.nav-toggle { display: none; background: none; border: 0; cursor: pointer; padding: 0.5rem; }
.nav-toggle .bar { display: block; width: 24px; height: 2px; margin: 5px 0; background: var(--gray-900); }
.nav-mobile { display: none; }
@media (max-width: 900px) {
  .nav-desktop { display: none; }
  .nav-toggle { display: block; }
  .nav-mobile {
    display: flex; flex-direction: column; gap: 1rem; padding: 0 1.5rem;
    max-height: 0; overflow: hidden; opacity: 0; background: var(--white);
    transition: max-height 0.3s, opacity 0.3s, padding 0.3s;
  }
  .nav-mobile.open { max-height: 24rem; opacity: 1; padding: 1rem 1.5rem; }
}

/* ============ Hero ============ */
.hero { position: relative; height: 100vh; min-height: 560px; overflow: hidden; color: var(--white); display: flex; align-items: center; }
.hero-slides { position: absolute; inset: 0; }
.hero-slide { position: absolute; inset: 0; opacity: 0; }
.hero-slide.is-active { opacity: 1; }
.hero-slide.is-incoming { z-index: 1; }
.hero-slide img { width: 100%; height: 100%; object-fit: cover; }
.hero-overlay { position: absolute; inset: 0; background: linear-gradient(to right, rgba(30,58,138,0.85), rgba(30,58,138,0.4)); }
.hero-content { position: relative; z-index: 2; }
.hero-caption { max-width: 48rem; }
.hero-title { font-size: clamp(2.25rem, 5vw, 3.75rem); font-weight: 700; margin-bottom: 1.5rem; }
.hero-subtitle { font-size: 1.25rem; margin-bottom: 2rem; color: #f3f4f6; }
.hero-cta { display: flex; gap: 1rem; flex-wrap: wrap; }
.hero-indicators { position: absolute; bottom: 2.5rem; left: 50%; transform: translateX(-50%); display: flex; gap: 0.75rem; z-index: 3; }
.hero-indicator {
  width: 12px; height: 12px; border-radius: 50%; border: 0; cursor: pointer;
  background: rgba(255,255,255,0.5); transition: background 0.3s;
}
.hero-indicator.is-active { background: var(--white); transform: scale(1.25); }

/* ============ Sections ============ */
.section { padding: 5rem 0; }
.bg-muted { background: var(--gray-50); }
.bg-accent { background: var(--blue-50); }
.section-heading { margin-bottom: 3rem; }
.section-heading.centered { text-align: center; }
.section-heading h2 { font-size: clamp(1.875rem, 3vw, 2.25rem); margin-bottom: 1rem; }
.section-heading p { font-size: 1.25rem; color: var(--gray-600); max-width: 48rem; margin: 0 auto; }
.grid { display: grid; gap: 1.5rem; }
.grid-2 { grid-template-columns: repeat(2, 1fr); }
.grid-3 { grid-template-columns: repeat(3, 1fr); }
.grid-4 { grid-template-columns: repeat(4, 1fr); }
@media (max-width: 900px) { .grid-3, .grid-4 { grid-template-columns: repeat(2, 1fr); } }
@media (max-width: 600px) { .grid-2, .grid-3, .grid-4 { grid-template-columns: 1fr; } }
.split { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; align-items: center; }
.split.reverse > :first-child { order: 2; }
@media (max-width: 900px) { .split { grid-template-columns: 1fr; } .split.reverse > :first-child { order: 0; } }
.lead { color: var(--gray-600); margin-bottom: 1rem; }
.media-frame img { border-radius: var(--radius); box-shadow: var(--shadow-lg); width: 100%; object-fit: cover; }
.prose p { color: var(--gray-600); margin-bottom: 1rem; }

/* ============ Cards ============ */
.card { background: var(--white); border-radius: var(--radius); box-shadow: var(--shadow); overflow: hidden; display: flex; flex-direction: column; transition: box-shadow 0.3s, transform 0.3s; }
.card:hover { box-shadow: var(--shadow-lg); }
.card-media { height: 12rem; overflow: hidden; }
.card-media.square { height: 16rem; }
.card-media img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.5s; }
.card:hover .card-media img { transform: scale(1.05); }
.card-body { padding: 1.5rem; display: flex; flex-direction: column; flex-grow: 1; }
.card-body h3 { font-size: 1.25rem; margin-bottom: 0.75rem; }
.card-body p { color: var(--gray-600); }
.card-link { margin-top: auto; padding-top: 1rem; font-weight: 500; }
.card-link .arrow { margin-left: 0.25rem; }
.panel { padding: 2rem; background: var(--blue-50); }
.team-role { color: var(--blue-600); margin-bottom: 0.75rem; }
.testimonial-card { padding: 2rem; }
.testimonial-card .quote { font-style: italic; color: var(--gray-700); margin-bottom: 1.5rem; }
.author { display: flex; align-items: center; gap: 1rem; }
.avatar { width: 3rem; height: 3rem; border-radius: 50%; background: var(--blue-100); color: var(--blue-600); display: flex; align-items: center; justify-content: center; font-weight: 700; font-size: 1.125rem; }
.author-role { color: var(--gray-600); font-size: 0.875rem; }
.client-logo { background: var(--gray-50); border: 1px solid var(--gray-200); border-radius: var(--radius); padding: 1.5rem; height: 8rem; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; }
.client-logo p { color: var(--gray-600); }
.stat { text-align: center; padding: 1.5rem; border-radius: var(--radius); background: linear-gradient(135deg, var(--blue-50), var(--white)); box-shadow: var(--shadow); }
.stat-value { font-size: 2.25rem; font-weight: 700; color: var(--blue-700); }
.stat-label { color: var(--gray-600); }
.eyebrow { text-transform: uppercase; letter-spacing: 0.05em; font-size: 0.75rem; color: var(--blue-600); }
.check-list { list-style: none; margin: 1rem 0 1.5rem; }
.check-list li { display: flex; gap: 0.5rem; align-items: flex-start; margin-bottom: 0.5rem; }
.check { color: var(--blue-600); font-weight: 700; }
.service-jump { display: flex; flex-direction: column; align-items: center; padding: 1.5rem; background: var(--blue-50); border-radius: var(--radius); color: var(--gray-900); text-align: center; }
.service-jump span { color: var(--blue-700); margin-top: 0.5rem; }
.service-detail { padding: 3rem 0; scroll-margin-top: var(--nav-height); border-bottom: 1px solid var(--gray-200); }
.service-detail h3 { font-size: 1.875rem; margin-bottom: 1rem; }

/* ============ Slider ============ */
.slider { overflow: hidden; }
.slider-controls { display: flex; align-items: center; justify-content: center; gap: 1rem; margin-top: 2rem; }
.slider-btn { width: 2.5rem; height: 2.5rem; border-radius: 50%; background: var(--white); box-shadow: var(--shadow); display: inline-flex; align-items: center; justify-content: center; font-size: 1.5rem; color: var(--blue-600); }
.slider-btn.disabled { opacity: 0.4; cursor: default; }
.slider-status { color: var(--gray-600); }

/* ============ Page hero & CTA ============ */
.page-hero { position: relative; padding: calc(var(--nav-height) + 6rem) 0 6rem; color: var(--white); overflow: hidden; }
.page-hero.solid { background: linear-gradient(to right, var(--blue-900), var(--blue-600)); }
.page-hero-bg { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; }
.page-hero-overlay { position: absolute; inset: 0; background: linear-gradient(to right, rgba(30,58,138,0.9), rgba(29,78,216,0.8)); }
.page-hero .container { position: relative; }
.page-hero h1 { font-size: clamp(2.25rem, 4vw, 3rem); margin-bottom: 1.5rem; }
.page-hero p { font-size: 1.25rem; max-width: 48rem; margin-bottom: 2rem; }
.cta { background: var(--blue-600); color: var(--white); }
.cta h2 { font-size: clamp(1.875rem, 3vw, 2.25rem); margin-bottom: 1rem; }
.cta p { font-size: 1.25rem; max-width: 42rem; margin: 0 auto 2rem; }

/* ============ Contact ============ */
.info-card { padding: 1.5rem; text-align: center; align-items: center; }
.info-card h3 { margin-bottom: 0.5rem; }
.info-card p { color: var(--gray-600); }
.contact-split { margin-top: 4rem; align-items: start; }
.contact-form { background: var(--white); padding: 2rem; border-radius: var(--radius); box-shadow: var(--shadow-lg); }
.form-row { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; }
@media (max-width: 600px) { .form-row { grid-template-columns: 1fr; } }
.form-field { margin-bottom: 1.5rem; }
.form-field label { display: block; font-weight: 500; color: var(--gray-700); margin-bottom: 0.5rem; }
.form-field input, .form-field select, .form-field textarea { width: 100%; padding: 0.75rem 1rem; border: 1px solid var(--gray-200); border-radius: var(--radius); font: inherit; }
.form-field input:focus, .form-field select:focus, .form-field textarea:focus { outline: 2px solid var(--blue-600); border-color: transparent; }
.form-field.has-error input, .form-field.has-error select, .form-field.has-error textarea { border-color: #dc2626; }
.field-error { color: #dc2626; font-size: 0.875rem; margin-top: 0.25rem; }
.alert { padding: 1rem; border-radius: var(--radius); margin-bottom: 1.5rem; transition: opacity 0.5s; }
.alert-success { background: #dcfce7; color: #166534; }
.alert-error { background: #fee2e2; color: #991b1b; }
.alert.hidden { opacity: 0; }
.map iframe { width: 100%; height: 400px; border: 0; display: block; }
.not-found { padding-top: calc(var(--nav-height) + 6rem); min-height: 60vh; }
.not-found h1 { font-size: 4rem; color: var(--blue-600); }

/* ============ Footer ============ */
.footer { background: var(--blue-900); color: #d1d5db; padding: 4rem 0 2rem; }
.footer-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; }
@media (max-width: 900px) { .footer-grid { grid-template-columns: repeat(2, 1fr); } }
.footer h3 { color: var(--white); font-size: 1.125rem; margin-bottom: 1rem; }
.footer ul { list-style: none; }
.footer li { margin-bottom: 0.5rem; }
.footer a { color: #d1d5db; }
.footer a:hover { color: var(--white); }
.footer-blurb { margin-top: 1rem; }
.footer-bottom { border-top: 1px solid rgba(255,255,255,0.1); margin-top: 3rem; padding-top: 2rem; font-size: 0.875rem; }

/* ============ Reveal animations ============ */
.js .reveal, .js .reveal-left, .js .reveal-right { opacity: 0; transition: opacity 0.8s ease-out, transform 0.8s ease-out; }
.js .reveal { transform: translateY(30px); }
.js .reveal-left { transform: translateX(-50px); }
.js .reveal-right { transform: translateX(50px); }
.js .is-visible { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  .js .reveal, .js .reveal-left, .js .reveal-right { opacity: 1; transform: none; transition: none; }
}
`

// siteJSContent drives the navbar, reveal-on-scroll, the contact banner
// and click tracking.
const siteJSContent = `(function() {
  'use strict';
  document.documentElement.classList.add('js');

  // ============ Navbar ============
  var navbar = document.getElementById('navbar');
  function onScroll() {
    if (navbar) navbar.classList.toggle('scrolled', window.scrollY > 20);
  }
  window.addEventListener('scroll', onScroll, { passive: true });
  onScroll();

  var toggle = document.querySelector('.nav-toggle');
  var mobile = document.getElementById('nav-mobile');
  if (toggle && mobile) {
    toggle.addEventListener('click', function() {
      var open = mobile.classList.toggle('open');
      toggle.setAttribute('aria-expanded', String(open));
    });
    mobile.addEventListener('click', function(e) {
      if (e.target.closest('a')) {
        mobile.classList.remove('open');
        toggle.setAttribute('aria-expanded', 'false');
      }
    });
  }

  // ============ Reveal on scroll ============
  var revealed = document.querySelectorAll('.reveal, .reveal-left, .reveal-right');
  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        var el = entry.target;
        var group = el.closest('.stagger');
        if (group) {
          var siblings = group.querySelectorAll('.reveal, .reveal-left, .reveal-right');
          var idx = Array.prototype.indexOf.call(siblings, el);
          el.style.transitionDelay = (idx * 0.2) + 's';
        }
        el.classList.add('is-visible');
        observer.unobserve(el);
      });
    }, { rootMargin: '0px 0px -20% 0px' });
    revealed.forEach(function(el) { observer.observe(el); });
  } else {
    revealed.forEach(function(el) { el.classList.add('is-visible'); });
  }

  // ============ Contact banner ============
  document.querySelectorAll('[data-autohide]').forEach(function(el) {
    var ms = parseInt(el.getAttribute('data-autohide'), 10) || 5000;
    setTimeout(function() {
      el.classList.add('hidden');
      setTimeout(function() { el.remove(); }, 500);
    }, ms);
  });

  // ============ Events ============
  window.ppmTrack = function(category, action, label) {
    var body = JSON.stringify({ category: category, action: action, label: label || '' });
    if (navigator.sendBeacon) {
      navigator.sendBeacon('/api/events', new Blob([body], { type: 'application/json' }));
      return;
    }
    fetch('/api/events', { method: 'POST', headers: { 'Content-Type': 'application/json' }, body: body, keepalive: true });
  };
  document.addEventListener('click', function(e) {
    var btn = e.target.closest('.btn');
    if (btn) window.ppmTrack('cta', 'click', btn.textContent.trim());
  });
})();
`

// heroJSContent connects the home page hero to the server-side rotator and
// plays each cue it receives with the Web Animations API.
const heroJSContent = `(function() {
  'use strict';
  var hero = document.getElementById('hero');
  if (!hero || !('WebSocket' in window)) return;

  var slides = hero.querySelectorAll('.hero-slide');
  var dots = hero.querySelectorAll('.hero-indicator');
  var title = hero.querySelector('.hero-title');
  var subtitle = hero.querySelector('.hero-subtitle');
  var caption = [title, subtitle, hero.querySelector('.hero-cta')];
  var reduced = window.matchMedia('(prefers-reduced-motion: reduce)').matches;

  var easings = {
    'none': 'linear',
    'power2.in': 'cubic-bezier(0.55, 0.055, 0.675, 0.19)',
    'power2.out': 'cubic-bezier(0.215, 0.61, 0.355, 1)',
    'power2.inOut': 'cubic-bezier(0.645, 0.045, 0.355, 1)'
  };

  function frame(p) {
    return { opacity: p.opacity, transform: 'translateY(' + p.y + 'px) scale(' + p.scale + ')' };
  }

  function targets(name, from, to) {
    switch (name) {
      case 'caption': return caption;
      case 'incoming': return [slides[to]];
      case 'outgoing': return [slides[from]];
      case 'indicator-out': return [dots[from]];
      case 'indicator-in': return [dots[to]];
    }
    return [];
  }

  function clear(el) {
    if (el && el.getAnimations) el.getAnimations().forEach(function(a) { a.cancel(); });
  }

  function play(msg) {
    if (msg.cue === 'content-swap') {
      if (msg.slide) {
        title.textContent = msg.slide.title || '';
        subtitle.textContent = msg.slide.subtitle || '';
      }
      return;
    }
    if (!msg.tween) return;
    if (msg.target === 'incoming') slides[msg.to].classList.add('is-incoming');
    targets(msg.target, msg.from, msg.to).forEach(function(el, k) {
      if (!el) return;
      clear(el);
      el.animate([frame(msg.tween.from), frame(msg.tween.to)], {
        duration: reduced ? 0 : msg.tween.duration_ms,
        delay: reduced ? 0 : (msg.tween.stagger_ms || 0) * k,
        easing: easings[msg.tween.ease] || 'linear',
        fill: 'both'
      });
    });
  }

  function settle(state) {
    if (state.transitioning) return;
    slides.forEach(function(el, i) {
      clear(el);
      el.classList.remove('is-incoming');
      el.classList.toggle('is-active', i === state.active_index);
      el.setAttribute('aria-hidden', String(i !== state.active_index));
    });
    dots.forEach(function(el, i) {
      clear(el);
      el.classList.toggle('is-active', i === state.active_index);
    });
    caption.forEach(clear);
  }

  var ws = null;
  var backoff = 1000;

  function send(msg) {
    if (ws && ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(msg));
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + (hero.getAttribute('data-socket') || '/ws/hero'));
    ws.onopen = function() {
      backoff = 1000;
      send({ type: 'mount', rendered: slides.length });
    };
    ws.onmessage = function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      if (msg.type === 'cue') play(msg);
      else if (msg.type === 'state') settle(msg);
      else if (msg.type === 'error' && window.console) console.warn('hero:', msg.message);
    };
    ws.onclose = function() {
      ws = null;
      setTimeout(connect, backoff);
      backoff = Math.min(backoff * 2, 30000);
    };
  }

  dots.forEach(function(dot) {
    dot.addEventListener('click', function() {
      send({ type: 'goto', index: parseInt(dot.getAttribute('data-index'), 10) });
    });
  });
  hero.addEventListener('keydown', function(e) {
    if (e.key === 'ArrowRight') send({ type: 'next' });
    if (e.key === 'ArrowLeft') send({ type: 'prev' });
  });
  window.addEventListener('pagehide', function() {
    if (ws) { ws.onclose = null; ws.close(); }
  });

  connect();
})();
`
