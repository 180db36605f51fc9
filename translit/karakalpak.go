// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package translit

// KarakalpakLatin converts Karakalpak Cyrillic into the Karakalpak Latin
// alphabet of 2016.
var KarakalpakLatin = NewTable("kaa-Cyrl-Latn", map[rune]string{
	'а': "a", 'А': "A",
	'ә': "á", 'Ә': "Á",
	'б': "b", 'Б': "B",
	'в': "v", 'В': "V",
	'г': "g", 'Г': "G",
	'ғ': "ǵ", 'Ғ': "Ǵ",
	'д': "d", 'Д': "D",
	'е': "e", 'Е': "E",
	'ё': "yo", 'Ё': "Yo",
	'ж': "j", 'Ж': "J",
	'з': "z", 'З': "Z",
	'и': "i", 'И': "I",
	'й': "y", 'Й': "Y",
	'к': "k", 'К': "K",
	'қ': "q", 'Қ': "Q",
	'л': "l", 'Л': "L",
	'м': "m", 'М': "M",
	'н': "n", 'Н': "N",
	'ң': "ń", 'Ң': "Ń",
	'о': "o", 'О': "O",
	'ө': "ó", 'Ө': "Ó",
	'п': "p", 'П': "P",
	'р': "r", 'Р': "R",
	'с': "s", 'С': "S",
	'т': "t", 'Т': "T",
	'у': "u", 'У': "U",
	'ү': "ú", 'Ү': "Ú",
	'ў': "w", 'Ў': "W",
	'ф': "f", 'Ф': "F",
	'х': "x", 'Х': "X",
	'ҳ': "h", 'Ҳ': "H",
	'ц': "c", 'Ц': "C",
	'ч': "ch", 'Ч': "Ch",
	'ш': "sh", 'Ш': "Sh",
	'щ': "sh", 'Щ': "Sh",
	'ъ': "", 'Ъ': "",
	'ы': "ı", 'Ы': "Í",
	'ь': "", 'Ь': "",
	'э': "e", 'Э': "E",
	'ю': "yu", 'Ю': "Yu",
	'я': "ya", 'Я': "Ya",
})
