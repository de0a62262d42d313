package webui

import "net/http"

const loginHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Blackos - Sign In</title>
  <style>
    :root{
      --bg: #0b0f14;
      --panel: rgba(16, 24, 40, 0.92);
      --muted: rgba(255,255,255,0.68);
      --text: rgba(255,255,255,0.92);
      --accent: #0a84ff;
      --danger: #ff453a;
      --font: ui-sans-serif, -apple-system, system-ui, Segoe UI, Roboto, Helvetica, Arial;
    }
    body{ margin:0; min-height:100vh; display:flex; align-items:center; justify-content:center;
      font-family:var(--font); color:var(--text);
      background: radial-gradient(1000px 600px at 50% 10%, #152033 0%, var(--bg) 60%); }
    form{ width: 340px; background: var(--panel); padding: 28px; border-radius: 14px;
      border: 1px solid rgba(255,255,255,0.08); }
    h2{ margin-top: 0; }
    label{ display:block; font-size:13px; color:var(--muted); margin: 12px 0 4px; }
    input{ width:100%; box-sizing:border-box; padding:10px; border-radius:8px;
      border:1px solid rgba(255,255,255,0.15); background:rgba(0,0,0,0.3); color:var(--text); }
    button{ margin-top:18px; width:100%; padding:12px; border:0; border-radius:8px;
      background:var(--accent); color:#fff; font-size:15px; cursor:pointer; }
    #status{ margin-top:12px; font-size:14px; color: var(--danger); min-height: 18px; }
  </style>
</head>
<body>
  <form id="login">
    <h2>Sign in</h2>
    <label for="email">Email</label>
    <input id="email" type="email" required />
    <label for="password">Password</label>
    <input id="password" type="password" required />
    <button type="submit">Sign in</button>
    <div id="status"></div>
  </form>
  <script>
    document.getElementById("login").addEventListener("submit", async function(e){
      e.preventDefault();
      const status = document.getElementById("status");
      status.textContent = "";
      const res = await fetch("/api/login", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({
          email: document.getElementById("email").value,
          password: document.getElementById("password").value
        })
      });
      if (res.ok) {
        window.location.href = "/admin";
        return;
      }
      const body = await res.json().catch(function(){ return {}; });
      status.textContent = body.error || "Login failed";
    });
  </script>
</body>
</html>`

// Login renders the sign-in page. A successful login sets the session
// cookie and redirects into the back office.
// Route: GET /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	servePage(w, loginHTML)
}
