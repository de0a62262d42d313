package webui

import "net/http"

const adminShellCSS = `
    :root{
      --bg: #0b0f14;
      --panel: rgba(16, 24, 40, 0.92);
      --muted: rgba(255,255,255,0.68);
      --text: rgba(255,255,255,0.92);
      --accent: #0a84ff;
      --ok: #34c759;
      --danger: #ff453a;
      --font: ui-sans-serif, -apple-system, system-ui, Segoe UI, Roboto, Helvetica, Arial;
    }
    body{ margin:0; font-family:var(--font); color:var(--text);
      background: radial-gradient(1000px 600px at 50% 10%, #152033 0%, var(--bg) 60%); }
    nav{ display:flex; gap:18px; align-items:center; padding: 14px 24px;
      background: var(--panel); border-bottom: 1px solid rgba(255,255,255,0.08); }
    nav a{ color: var(--muted); text-decoration:none; font-size:14px; }
    nav a.active{ color: var(--text); font-weight: 600; }
    nav .spacer{ flex:1; }
    main{ padding: 24px; }
    table{ width:100%; border-collapse: collapse; background: var(--panel); border-radius: 12px; overflow:hidden; }
    th, td{ padding: 10px 12px; text-align:left; font-size:14px;
      border-bottom: 1px solid rgba(255,255,255,0.06); }
    th{ color: var(--muted); font-weight:500; font-size:12px; text-transform:uppercase; }
    button{ padding:6px 12px; border:0; border-radius:6px; background:var(--accent);
      color:#fff; cursor:pointer; font-size:13px; }
    button.danger{ background: var(--danger); }
    button.ghost{ background: transparent; border: 1px solid rgba(255,255,255,0.25); }
    input, select, textarea{ padding:8px; border-radius:6px; border:1px solid rgba(255,255,255,0.15);
      background:rgba(0,0,0,0.3); color:var(--text); font-size:13px; }
    .cards{ display:flex; gap:16px; flex-wrap:wrap; margin-bottom: 24px; }
    .stat{ background: var(--panel); border-radius: 12px; padding: 18px 24px; min-width: 160px;
      border: 1px solid rgba(255,255,255,0.08); }
    .stat .value{ font-size: 28px; font-weight: 650; }
    .stat .label{ font-size: 12px; color: var(--muted); margin-top: 4px; }
    .panel{ background: var(--panel); border-radius: 12px; padding: 18px;
      border: 1px solid rgba(255,255,255,0.08); margin-bottom: 20px; }
    .panel h2{ margin: 0 0 12px; font-size: 15px; }
    .panel form{ display:flex; gap:10px; flex-wrap:wrap; align-items:center; }
    .toolbar{ display:flex; gap:10px; margin-bottom: 16px; }
    .toolbar input{ flex:1; max-width: 360px; }
    .strip{ display:flex; gap:12px; flex-wrap:wrap; margin-bottom: 20px; }
    .strip .chip{ background: var(--panel); border: 1px solid rgba(255,255,255,0.08);
      border-radius: 10px; padding: 10px 14px; font-size: 13px; }
    .strip .chip .who{ color: var(--accent); font-weight: 600; }
`

const adminNavHTML = `
  <nav>
    <a href="/admin" id="nav-dashboard">Dashboard</a>
    <a href="/admin/leads" id="nav-leads">Leads</a>
    <a href="/admin/meetings" id="nav-meetings">Meetings</a>
    <div class="spacer"></div>
    <a href="#" onclick="fetch('/api/logout',{method:'POST'}).then(()=>location.href='/login')">Sign out</a>
  </nav>
`

// checkResponse alerts on failed mutations so the operator never loses an
// edit to a silent reload.
const adminCheckResponseJS = `
    async function checkResponse(res, action) {
      if (res.ok) return true;
      let msg = action + " failed";
      try {
        const body = await res.json();
        if (body.error) msg += ": " + body.error;
      } catch (e) {}
      alert(msg);
      return false;
    }
`

const adminDashboardHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Blackos - Dashboard</title>
  <style>` + adminShellCSS + `</style>
</head>
<body>` + adminNavHTML + `
  <main>
    <div class="cards">
      <div class="stat"><div class="value" id="total-leads">-</div><div class="label">Total leads</div></div>
      <div class="stat"><div class="value" id="open-meetings">-</div><div class="label">Open meetings</div></div>
      <div class="stat"><div class="value" id="next-meeting">-</div><div class="label">Next meeting</div></div>
    </div>
  </main>
  <script>
    document.getElementById("nav-dashboard").className = "active";
    fetch("/admin/api/dashboard").then(r => r.json()).then(function(stats){
      document.getElementById("total-leads").textContent = stats.totalLeads;
      document.getElementById("open-meetings").textContent = stats.openMeetings;
      document.getElementById("next-meeting").textContent =
        stats.nextMeeting ? new Date(stats.nextMeeting).toLocaleString() : "none";
    });
  </script>
</body>
</html>`

const adminLeadsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Blackos - Leads</title>
  <style>` + adminShellCSS + `</style>
</head>
<body>` + adminNavHTML + `
  <main>
    <div class="panel">
      <h2 id="lead-form-title">New lead</h2>
      <form id="lead-form">
        <input type="hidden" id="lead-id">
        <input id="lead-name" placeholder="Name" required>
        <input id="lead-phone" placeholder="Phone" required>
        <select id="lead-source">
          <option value="">Source</option>
          <option>Justdial</option><option>Personal</option><option>Other</option>
        </select>
        <select id="lead-handler">
          <option value="">Handler</option>
          <option>Anas</option><option>Aman</option>
        </select>
        <input id="lead-description" placeholder="Description">
        <button type="submit">Save lead</button>
        <button type="button" class="ghost" id="lead-form-reset">Clear</button>
      </form>
    </div>
    <div class="toolbar">
      <input id="search" placeholder="Search by name or phone">
    </div>
    <table>
      <thead>
        <tr><th>Name</th><th>Phone</th><th>Source</th><th>Handler</th><th>Status</th><th>Meeting</th><th></th></tr>
      </thead>
      <tbody id="rows"></tbody>
    </table>
  </main>
  <script>
    document.getElementById("nav-leads").className = "active";
    const STATUSES = ["New", "Contacted", "Qualified", "Won", "Lost"];
    let allLeads = [];
` + adminCheckResponseJS + `
    function statusSelect(lead) {
      const opts = STATUSES.map(function(s){
        const sel = s === lead.status ? " selected" : "";
        return '<option' + sel + '>' + s + '</option>';
      }).join("");
      return '<select onchange="patchLead(\'' + lead.id + '\', {status: this.value})">' + opts + '</select>';
    }

    function render() {
      const q = document.getElementById("search").value.trim().toLowerCase();
      const rows = document.getElementById("rows");
      rows.innerHTML = "";
      for (const lead of allLeads) {
        if (q && !lead.name.toLowerCase().includes(q) && !lead.phone.toLowerCase().includes(q)) {
          continue;
        }
        const tr = document.createElement("tr");
        tr.innerHTML =
          "<td>" + lead.name + "</td>" +
          "<td>" + lead.phone + "</td>" +
          "<td>" + (lead.source || "") + "</td>" +
          "<td>" + (lead.handler || "") + "</td>" +
          "<td>" + statusSelect(lead) + "</td>" +
          "<td>" + (lead.meetingSchedule ? new Date(lead.meetingSchedule).toLocaleString() : "-") + "</td>" +
          '<td><button class="ghost" onclick="editLead(\'' + lead.id + '\')">Edit</button> ' +
          '<button class="danger" onclick="removeLead(\'' + lead.id + '\')">Delete</button></td>';
        rows.appendChild(tr);
      }
    }

    async function load() {
      const res = await fetch("/api/leads");
      allLeads = await res.json();
      render();
    }

    function resetForm() {
      document.getElementById("lead-form").reset();
      document.getElementById("lead-id").value = "";
      document.getElementById("lead-form-title").textContent = "New lead";
    }

    window.editLead = function(id) {
      const lead = allLeads.find(function(l){ return l.id === id; });
      if (!lead) return;
      document.getElementById("lead-id").value = lead.id;
      document.getElementById("lead-name").value = lead.name;
      document.getElementById("lead-phone").value = lead.phone;
      document.getElementById("lead-source").value = lead.source || "";
      document.getElementById("lead-handler").value = lead.handler || "";
      document.getElementById("lead-description").value = lead.description || "";
      document.getElementById("lead-form-title").textContent = "Edit lead";
    };

    window.patchLead = async function(id, patch) {
      const res = await fetch("/api/leads/" + id, {
        method: "PUT",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(patch)
      });
      if (await checkResponse(res, "Update")) load();
    };

    window.removeLead = async function(id) {
      const res = await fetch("/api/leads/" + id, { method: "DELETE" });
      if (await checkResponse(res, "Delete")) load();
    };

    document.getElementById("lead-form").addEventListener("submit", async function(ev) {
      ev.preventDefault();
      const payload = {
        name: document.getElementById("lead-name").value.trim(),
        phone: document.getElementById("lead-phone").value.trim(),
        source: document.getElementById("lead-source").value,
        handler: document.getElementById("lead-handler").value,
        description: document.getElementById("lead-description").value.trim()
      };
      const id = document.getElementById("lead-id").value;
      const res = await fetch(id ? "/api/leads/" + id : "/api/leads", {
        method: id ? "PUT" : "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(payload)
      });
      if (await checkResponse(res, "Save")) {
        resetForm();
        load();
      }
    });

    document.getElementById("lead-form-reset").addEventListener("click", resetForm);
    document.getElementById("search").addEventListener("input", render);

    load();
  </script>
</body>
</html>`

const adminMeetingsHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Blackos - Meetings</title>
  <style>` + adminShellCSS + `</style>
</head>
<body>` + adminNavHTML + `
  <main>
    <div class="panel">
      <h2>Schedule meeting</h2>
      <form id="meeting-form">
        <select id="meeting-lead" required><option value="">Lead</option></select>
        <input type="datetime-local" id="meeting-when" required>
        <input id="meeting-notes" placeholder="Notes">
        <button type="submit">Schedule</button>
      </form>
    </div>
    <div class="strip" id="upcoming"></div>
    <table>
      <thead>
        <tr><th>When</th><th>Lead</th><th>Notes</th><th>Done</th><th>Next follow-up</th><th></th></tr>
      </thead>
      <tbody id="rows"></tbody>
    </table>
  </main>
  <script>
    document.getElementById("nav-meetings").className = "active";
    let leadNames = {};
` + adminCheckResponseJS + `
    function leadName(id) {
      return leadNames[id] || "Unknown";
    }

    async function loadLeads() {
      const res = await fetch("/api/leads");
      const list = await res.json();
      leadNames = {};
      const sel = document.getElementById("meeting-lead");
      sel.innerHTML = '<option value="">Lead</option>';
      for (const lead of list) {
        leadNames[lead.id] = lead.name;
        const opt = document.createElement("option");
        opt.value = lead.id;
        opt.textContent = lead.name;
        sel.appendChild(opt);
      }
    }

    async function loadUpcoming() {
      const res = await fetch("/api/meetings?upcoming=true");
      const list = await res.json();
      const strip = document.getElementById("upcoming");
      strip.innerHTML = "";
      for (const m of list.slice(0, 6)) {
        const chip = document.createElement("div");
        chip.className = "chip";
        chip.innerHTML = '<span class="who">' + leadName(m.leadId) + '</span> ' +
          new Date(m.datetime).toLocaleString();
        strip.appendChild(chip);
      }
    }

    async function loadMeetings() {
      const res = await fetch("/api/meetings");
      const list = await res.json();
      const rows = document.getElementById("rows");
      rows.innerHTML = "";
      for (const m of list) {
        const tr = document.createElement("tr");
        tr.innerHTML =
          "<td>" + new Date(m.datetime).toLocaleString() + "</td>" +
          "<td>" + leadName(m.leadId) + "</td>" +
          "<td>" + (m.notes || "") + "</td>" +
          '<td><input type="checkbox"' + (m.completed ? " checked" : "") +
            ' onchange="completeMeeting(\'' + m.id + '\', this)"></td>' +
          '<td><input type="datetime-local" id="next-' + m.id + '"></td>' +
          '<td><button onclick="completeMeeting(\'' + m.id + '\')">Save</button> ' +
          '<button class="danger" onclick="removeMeeting(\'' + m.id + '\')">Delete</button></td>';
        rows.appendChild(tr);
      }
    }

    async function load() {
      await loadLeads();
      await loadUpcoming();
      await loadMeetings();
    }

    window.completeMeeting = async function(id, checkbox) {
      const patch = { completed: checkbox ? checkbox.checked : true };
      const next = document.getElementById("next-" + id);
      if (next && next.value) {
        patch.nextMeetingDatetime = new Date(next.value).toISOString();
      }
      const res = await fetch("/api/meetings/" + id, {
        method: "PATCH",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(patch)
      });
      if (await checkResponse(res, "Update")) load();
    };

    window.removeMeeting = async function(id) {
      const res = await fetch("/api/meetings/" + id, { method: "DELETE" });
      if (await checkResponse(res, "Delete")) load();
    };

    document.getElementById("meeting-form").addEventListener("submit", async function(ev) {
      ev.preventDefault();
      const payload = {
        leadId: document.getElementById("meeting-lead").value,
        datetime: new Date(document.getElementById("meeting-when").value).toISOString(),
        notes: document.getElementById("meeting-notes").value.trim()
      };
      const res = await fetch("/api/meetings", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(payload)
      });
      if (await checkResponse(res, "Schedule")) {
        document.getElementById("meeting-form").reset();
        load();
      }
    });

    load();
  </script>
</body>
</html>`

// AdminDashboard renders the stats overview.
// Route: GET /admin
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	servePage(w, adminDashboardHTML)
}

// AdminLeads renders the leads table with the create and edit form.
// Route: GET /admin/leads
func (h *Handler) AdminLeads(w http.ResponseWriter, r *http.Request) {
	servePage(w, adminLeadsHTML)
}

// AdminMeetings renders the meeting list with the scheduler and the
// upcoming strip.
// Route: GET /admin/meetings
func (h *Handler) AdminMeetings(w http.ResponseWriter, r *http.Request) {
	servePage(w, adminMeetingsHTML)
}
