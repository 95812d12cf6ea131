package i18n

var english = map[string]string{
	"app.title":    "Organizational Mining",
	"app.subtitle": "Process mining dashboard",

	"nav.dashboard":    "Dashboard",
	"nav.tables":       "Tables",
	"nav.organization": "Organization",
	"nav.roles":        "Roles",
	"nav.users":        "Users",
	"nav.performance":  "Performance",
	"nav.advanced":     "Advanced",
	"nav.bpmn":         "BPMN",
	"nav.settings":     "Settings",

	"header.language": "Language",
	"header.theme":    "Theme",

	"theme.light":  "Light",
	"theme.dark":   "Dark",
	"theme.system": "System",

	"language.en": "English",
	"language.id": "Bahasa Indonesia",

	"common.loading":  "Loading...",
	"common.error":    "Failed to load: %s",
	"common.retrying": "Retrying...",
	"common.offline":  "OFFLINE",
	"common.noData":   "No data available",
	"common.updated":  "Updated %s",
	"common.search":   "Search",
	"common.ready":    "Ready",
	"common.stale":    "Showing the last loaded data",

	"dashboard.title":    "Dashboard",
	"dashboard.subtitle": "Overview of every analytics section",
	"dashboard.sections": "Sections",
	"dashboard.users":    "Users",
	"dashboard.roles":    "Roles",
	"dashboard.cases":    "Cases",
	"dashboard.nodes":    "Process steps",

	"tables.title":             "Data Tables",
	"tables.subtitle":          "Search, sort and paginate tabular data",
	"tables.searchPlaceholder": "Search by name or email...",
	"tables.showing":           "Showing %d to %d of %d entries",
	"tables.page":              "Page %d of %d",
	"tables.rowsPerPage":       "Rows per page: %d",
	"tables.noResults":         "No results found.",
	"tables.sortedBy":          "Sorted by %s (%s)",

	"col.id":          "ID",
	"col.name":        "Name",
	"col.email":       "Email",
	"col.role":        "Role",
	"col.status":      "Status",
	"col.createdAt":   "Created",
	"col.roleA":       "Role A",
	"col.roleB":       "Role B",
	"col.weight":      "Weight",
	"col.userA":       "User A",
	"col.userB":       "User B",
	"col.month":       "Month",
	"col.overtime":    "Overtime count",
	"col.caseId":      "Case",
	"col.duration":    "Duration (days)",
	"col.source":      "From role",
	"col.target":      "To role",
	"col.avgDuration": "Average handover (hours)",

	"status.active":   "active",
	"status.inactive": "inactive",
	"status.pending":  "pending",

	"org.title":             "Organization Evolution",
	"org.activeUsers":       "Active users",
	"org.activeRoles":       "Active roles",
	"org.totalInteractions": "Total interactions",
	"org.topRoles":          "Top roles",
	"org.trend":             "Interactions by phase",
	"org.monthly":           "Monthly interactions",
	"org.range":             "Range %s to %s",
	"org.year":              "Year %s",
	"org.allYears":          "All years",

	"roles.title":        "Role Interactions",
	"roles.interactions": "Interactions between roles",
	"roles.top":          "Top %d role pairs",
	"roles.all":          "All roles (%d)",

	"users.title":        "User Collaboration",
	"users.collab":       "Collaboration in %s",
	"users.all":          "All users (%d)",
	"users.monthPrompt":  "Month (YYYY-MM): ",
	"users.invalidMonth": "Month must look like 2024-04",

	"perf.title":     "Performance",
	"perf.overtime":  "Overtime risk",
	"perf.durations": "Project durations",
	"perf.average":   "Average duration: %s days",

	"adv.title":     "Advanced Analytics",
	"adv.handovers": "Handover time between roles",
	"adv.heatmap":   "Utilization by weekday and hour",
	"adv.peak":      "Peak: %s %02d:00 (%d events)",
	"adv.legend":    "Less",
	"adv.legendMax": "More",

	"day.1": "Mon",
	"day.2": "Tue",
	"day.3": "Wed",
	"day.4": "Thu",
	"day.5": "Fri",
	"day.6": "Sat",
	"day.7": "Sun",

	"bpmn.title":   "BPMN Process",
	"bpmn.summary": "%d steps, %d flows",
	"bpmn.stage":   "Stage %d",
	"bpmn.flows":   "Flows",

	"settings.title":     "Settings",
	"settings.language":  "Language",
	"settings.theme":     "Theme",
	"settings.sidebar":   "Sidebar",
	"settings.collapsed": "Collapsed",
	"settings.expanded":  "Expanded",
	"settings.hint":      "L switches language, T cycles theme, [ toggles the sidebar",
	"settings.saved":     "Saved to %s",
	"settings.notSaved":  "Not persisted",
	"settings.file":      "Preferences file",

	"help.title":      "Keyboard Shortcuts",
	"help.navigation": "Navigation",
	"help.tables":     "Tables",
	"help.general":    "General",
	"help.pages":      "Next/previous page",
	"help.sections":   "Jump to section",
	"help.search":     "Search",
	"help.sort":       "Sort by column N",
	"help.pageSize":   "Cycle rows per page",
	"help.paging":     "Previous/next table page",
	"help.rows":       "Move selection",
	"help.month":      "Change month",
	"help.refresh":    "Reload section",
	"help.language":   "Switch language",
	"help.theme":      "Cycle theme",
	"help.sidebar":    "Toggle sidebar",
	"help.help":       "Toggle help",
	"help.quit":       "Quit",
	"help.close":      "Press any key to close",
}

var indonesian = map[string]string{
	"app.title":    "Organizational Mining",
	"app.subtitle": "Dasbor process mining",

	"nav.dashboard":    "Dasbor",
	"nav.tables":       "Tabel",
	"nav.organization": "Organisasi",
	"nav.roles":        "Peran",
	"nav.users":        "Pengguna",
	"nav.performance":  "Kinerja",
	"nav.advanced":     "Lanjutan",
	"nav.bpmn":         "BPMN",
	"nav.settings":     "Pengaturan",

	"header.language": "Bahasa",
	"header.theme":    "Tema",

	"theme.light":  "Terang",
	"theme.dark":   "Gelap",
	"theme.system": "Sistem",

	"language.en": "English",
	"language.id": "Bahasa Indonesia",

	"common.loading":  "Memuat...",
	"common.error":    "Gagal memuat: %s",
	"common.retrying": "Mencoba lagi...",
	"common.offline":  "LURING",
	"common.noData":   "Tidak ada data",
	"common.updated":  "Diperbarui %s",
	"common.search":   "Cari",
	"common.ready":    "Siap",
	"common.stale":    "Menampilkan data terakhir yang dimuat",

	"dashboard.title":    "Dasbor",
	"dashboard.subtitle": "Ringkasan seluruh bagian analitik",
	"dashboard.sections": "Bagian",
	"dashboard.users":    "Pengguna",
	"dashboard.roles":    "Peran",
	"dashboard.cases":    "Kasus",
	"dashboard.nodes":    "Langkah proses",

	"tables.title":             "Tabel Data",
	"tables.subtitle":          "Cari, urutkan, dan bagi data tabel per halaman",
	"tables.searchPlaceholder": "Cari nama atau email...",
	"tables.showing":           "Menampilkan %d sampai %d dari %d entri",
	"tables.page":              "Halaman %d dari %d",
	"tables.rowsPerPage":       "Baris per halaman: %d",
	"tables.noResults":         "Tidak ada hasil.",
	"tables.sortedBy":          "Diurutkan menurut %s (%s)",

	"col.id":          "ID",
	"col.name":        "Nama",
	"col.email":       "Email",
	"col.role":        "Peran",
	"col.status":      "Status",
	"col.createdAt":   "Dibuat",
	"col.roleA":       "Peran A",
	"col.roleB":       "Peran B",
	"col.weight":      "Bobot",
	"col.userA":       "Pengguna A",
	"col.userB":       "Pengguna B",
	"col.month":       "Bulan",
	"col.overtime":    "Jumlah lembur",
	"col.caseId":      "Kasus",
	"col.duration":    "Durasi (hari)",
	"col.source":      "Dari peran",
	"col.target":      "Ke peran",
	"col.avgDuration": "Rata-rata serah terima (jam)",

	"status.active":   "aktif",
	"status.inactive": "nonaktif",
	"status.pending":  "tertunda",

	"org.title":             "Evolusi Organisasi",
	"org.activeUsers":       "Pengguna aktif",
	"org.activeRoles":       "Peran aktif",
	"org.totalInteractions": "Total interaksi",
	"org.topRoles":          "Peran teratas",
	"org.trend":             "Interaksi per fase",
	"org.monthly":           "Interaksi bulanan",
	"org.range":             "Rentang %s sampai %s",
	"org.year":              "Tahun %s",
	"org.allYears":          "Semua tahun",

	"roles.title":        "Interaksi Peran",
	"roles.interactions": "Interaksi antarperan",
	"roles.top":          "%d pasangan peran teratas",
	"roles.all":          "Semua peran (%d)",

	"users.title":        "Kolaborasi Pengguna",
	"users.collab":       "Kolaborasi pada %s",
	"users.all":          "Semua pengguna (%d)",
	"users.monthPrompt":  "Bulan (YYYY-MM): ",
	"users.invalidMonth": "Format bulan harus seperti 2024-04",

	"perf.title":     "Kinerja",
	"perf.overtime":  "Risiko lembur",
	"perf.durations": "Durasi proyek",
	"perf.average":   "Rata-rata durasi: %s hari",

	"adv.title":     "Analitik Lanjutan",
	"adv.handovers": "Waktu serah terima antarperan",
	"adv.heatmap":   "Utilisasi per hari dan jam",
	"adv.peak":      "Puncak: %s %02d:00 (%d kejadian)",
	"adv.legend":    "Sedikit",
	"adv.legendMax": "Banyak",

	"day.1": "Sen",
	"day.2": "Sel",
	"day.3": "Rab",
	"day.4": "Kam",
	"day.5": "Jum",
	"day.6": "Sab",
	"day.7": "Min",

	"bpmn.title":   "Proses BPMN",
	"bpmn.summary": "%d langkah, %d alur",
	"bpmn.stage":   "Tahap %d",
	"bpmn.flows":   "Alur",

	"settings.title":     "Pengaturan",
	"settings.language":  "Bahasa",
	"settings.theme":     "Tema",
	"settings.sidebar":   "Bilah sisi",
	"settings.collapsed": "Diciutkan",
	"settings.expanded":  "Dibentangkan",
	"settings.hint":      "L mengganti bahasa, T mengganti tema, [ menciutkan bilah sisi",
	"settings.saved":     "Disimpan ke %s",
	"settings.notSaved":  "Tidak disimpan",
	"settings.file":      "Berkas preferensi",

	"help.title":      "Pintasan Keyboard",
	"help.navigation": "Navigasi",
	"help.tables":     "Tabel",
	"help.general":    "Umum",
	"help.pages":      "Halaman berikut/sebelumnya",
	"help.sections":   "Lompat ke bagian",
	"help.search":     "Cari",
	"help.sort":       "Urutkan menurut kolom N",
	"help.pageSize":   "Ganti jumlah baris",
	"help.paging":     "Halaman tabel sebelumnya/berikutnya",
	"help.rows":       "Pindahkan pilihan",
	"help.month":      "Ganti bulan",
	"help.refresh":    "Muat ulang bagian",
	"help.language":   "Ganti bahasa",
	"help.theme":      "Ganti tema",
	"help.sidebar":    "Ciutkan bilah sisi",
	"help.help":       "Tampilkan bantuan",
	"help.quit":       "Keluar",
	"help.close":      "Tekan tombol apa saja untuk menutup",
}
