package handler

var (
	helpText = "🎧 <b>Spotify Info Bot</b>\n\n" +
		"Я помогу получить информацию о треках и плейлистах Spotify.\n\n" +
		"📌 <b>Что я умею:</b>\n" +
		"• Отправь ссылку на трек Spotify — я покажу название, исполнителя, обложку, дату релиза и лейбл.\n" +
		"• Отправь ссылку на плейлист — я выведу полный список треков.\n" +
		"• Работаю в группах и в личке.\n" +
		"• Можно вызвать в inline-режиме: напиши <code>@имя_бота</code> и начни вводить название трека.\n\n" +
		"Пример:\n" +
		"<code>https://open.spotify.com/track/xxxxxxxx</code>"

	resolveFailed      = "Не удалось раскрыть короткую ссылку 😕"
	unrecognizedLink   = "Не удалось распознать ссылку 😕"
	trackInfoFailed    = "Не удалось получить информацию о треке 😢"
	playlistInfoFailed = "Не удалось получить информацию о плейлисте 😢"
	emptyPlaylist      = "В плейлисте нет доступных треков 😕"
)
