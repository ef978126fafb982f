package constvars

const (
	ResponseSuccess = "success"
	ResponseError   = "error"

	// API envelope messages
	AutoScheduleSuccessMessage   = "auto schedule completed"
	CreateScheduleSuccessMessage = "schedule created successfully"
	QueryScheduleSuccessMessage  = "schedules fetched successfully"
	CreateTaskSuccessMessage     = "task created successfully"
)

// Assistant chat-style messages shown to the end user. The assistant speaks
// casual Indonesian, same voice as the rest of the product.
const (
	ChatNoFreeSlotMessage = "Minggu ini lagi padet banget, jadi belum ada slot kosong yang cukup buat dijadwalin. Mau aku cek minggu depan atau cari durasi lebih pendek?"

	// args: activity, local start, local end
	ChatScheduledMessageFormat = "Siap! Aku udah ngejadwalin **%s** di **%s – %s (WIB)**. Have fun!"

	// args: event title
	ChatScheduleCreatedMessageFormat = "Okeng, noted! Jadwal \"**%s**\" udah aku tambahin nih."

	// args: task title
	ChatTaskCreatedMessageFormat = "Sip! Tugas \"**%s**\" udah aku tambahin ke to-do list, jangan lupa dikerjain."

	ChatEmptyScheduleMessage = "Wah, jadwal kamu kosong nih. Waktunya santai-santai!"

	ChatScheduleListHeader = "Ini dia jadwal kamu:"
	// args: local start, event title
	ChatScheduleListItemFormat = "- %s: **%s**"

	// args: comma-joined schedule contents
	ChatMorningDigestTitle  = "Jadwal Hari Ini"
	ChatMorningDigestFormat = "Selamat pagi! Hari ini ada: %s"

	// args: task content
	ChatDeadlineReminderTitle  = "Peringatan Deadline"
	ChatDeadlineReminderFormat = "Tugas \"**%s**\" akan jatuh tempo dalam waktu 12 jam ke depan!"
)
