package webui

import "net/http"

const landingHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Blackos - Web &amp; Software Agency</title>
  <style>
    :root{
      --bg: #0b0f14;
      --panel: rgba(16, 24, 40, 0.92);
      --muted: rgba(255,255,255,0.68);
      --text: rgba(255,255,255,0.92);
      --accent: #0a84ff;
      --ok: #34c759;
      --danger: #ff453a;
      --radius: 14px;
      --font: ui-sans-serif, -apple-system, system-ui, Segoe UI, Roboto, Helvetica, Arial;
    }
    body{ margin:0; font-family:var(--font); color:var(--text);
      background: radial-gradient(1000px 600px at 50% 10%, #152033 0%, var(--bg) 60%); }
    header{ padding: 48px 24px 12px; text-align:center; }
    header h1{ font-size: 40px; margin: 0 0 8px; }
    header p{ color: var(--muted); max-width: 560px; margin: 0 auto; }
    .services{ display:flex; flex-wrap:wrap; gap:16px; justify-content:center; padding:32px 24px; }
    .card{ background: var(--panel); border-radius: var(--radius); padding: 20px; width: 240px;
      border: 1px solid rgba(255,255,255,0.08); }
    .card h3{ margin-top:0; }
    .card p{ color: var(--muted); font-size: 14px; }
    form{ max-width: 420px; margin: 0 auto 64px; background: var(--panel); padding: 24px;
      border-radius: var(--radius); border: 1px solid rgba(255,255,255,0.08); }
    label{ display:block; font-size:13px; color:var(--muted); margin: 12px 0 4px; }
    input, textarea{ width:100%; box-sizing:border-box; padding:10px; border-radius:8px;
      border:1px solid rgba(255,255,255,0.15); background:rgba(0,0,0,0.3); color:var(--text); }
    button{ margin-top:16px; width:100%; padding:12px; border:0; border-radius:8px;
      background:var(--accent); color:#fff; font-size:15px; cursor:pointer; }
    #status{ margin-top:12px; font-size:14px; text-align:center; }
    #status.ok{ color: var(--ok); } #status.err{ color: var(--danger); }
  </style>
</head>
<body>
  <header>
    <h1>Blackos</h1>
    <p>We design and build websites, e-commerce stores and custom software for growing businesses.</p>
  </header>
  <section class="services">
    <div class="card"><h3>Websites</h3><p>Fast, modern marketing sites that convert visitors into enquiries.</p></div>
    <div class="card"><h3>E-commerce</h3><p>Storefronts with payments, inventory and order tracking built in.</p></div>
    <div class="card"><h3>Custom Software</h3><p>Dashboards, portals and automation tailored to your workflow.</p></div>
  </section>
  <form id="contact">
    <h3>Get in touch</h3>
    <label for="name">Name</label>
    <input id="name" required />
    <label for="phone">Phone</label>
    <input id="phone" required />
    <label for="description">What do you need?</label>
    <textarea id="description" rows="3"></textarea>
    <button type="submit">Send enquiry</button>
    <div id="status"></div>
  </form>
  <script>
    document.getElementById("contact").addEventListener("submit", async function(e){
      e.preventDefault();
      const status = document.getElementById("status");
      status.className = ""; status.textContent = "Sending...";
      try {
        const res = await fetch("/api/leads", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({
            name: document.getElementById("name").value,
            phone: document.getElementById("phone").value,
            description: document.getElementById("description").value,
            source: "Other",
            handler: "Anas"
          })
        });
        if (!res.ok) throw new Error("request failed");
        status.className = "ok"; status.textContent = "Thanks! We will call you back shortly.";
        e.target.reset();
      } catch (err) {
        status.className = "err"; status.textContent = "Something went wrong, please try again.";
      }
    });
  </script>
</body>
</html>`

// Landing renders the public marketing page with the enquiry form.
// Route: GET /
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	servePage(w, landingHTML)
}
