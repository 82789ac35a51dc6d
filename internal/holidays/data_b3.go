package holidays

import "market-holidays/internal/model"

// b3Holidays lists B3, Sao Paulo (formerly BM&F-BOVESPA) closures.
// Source: http://www.b3.com.br
var b3Holidays = []model.Holiday{
	// 2020
	h(2020, 1, 1, "New year"),
	h(2020, 2, 24, "Carnaval Monday"),
	h(2020, 2, 25, "Carnaval"),
	h(2020, 4, 10, "Good Friday"),
	h(2020, 4, 21, "Tiradentes' Day"),
	h(2020, 5, 1, "Labour Day"),
	h(2020, 6, 11, "Corpus Christi"),
	h(2020, 7, 9, "Constitutional Revolution of 1932"),
	h(2020, 9, 7, "Independence Day"),
	h(2020, 10, 12, "Our Lady of Aparecida"),
	h(2020, 11, 2, "All Souls' Day"),
	h(2020, 11, 15, "Republic Day"),
	h(2020, 12, 25, "Christmas Day"),
	h(2020, 12, 31, "Last day of year"),

	// 2021
	h(2021, 1, 1, "New year"),
	h(2021, 1, 25, "Anniversary of the city of São Paulo"),
	h(2021, 2, 15, "Carnaval Monday"),
	h(2021, 2, 16, "Carnaval"),
	h(2021, 4, 2, "Good Friday"),
	h(2021, 4, 21, "Tiradentes' Day"),
	h(2021, 5, 1, "Labour Day"),
	h(2021, 6, 3, "Corpus Christi"),
	h(2021, 7, 9, "Constitutional Revolution of 1932"),
	h(2021, 9, 7, "Independence Day"),
	h(2021, 10, 12, "Our Lady of Aparecida"),
	h(2021, 11, 2, "All Souls' Day"),
	h(2021, 11, 15, "Republic Day"),
	h(2021, 12, 25, "Christmas Day"),
	h(2021, 12, 31, "Last day of year"),

	// 2022
	h(2022, 1, 1, "New year"),
	h(2022, 2, 28, "Carnaval Monday"),
	h(2022, 3, 1, "Carnaval"),
	h(2022, 4, 15, "Good Friday"),
	h(2022, 4, 21, "Tiradentes' Day"),
	h(2022, 5, 1, "Labour Day"),
	h(2022, 6, 16, "Corpus Christi"),
	h(2022, 9, 7, "Independence Day"),
	h(2022, 10, 12, "Our Lady of Aparecida"),
	h(2022, 11, 2, "All Souls' Day"),
	h(2022, 11, 15, "Republic Day"),
	h(2022, 12, 25, "Christmas Day"),
	h(2022, 12, 31, "Last day of year"),

	// 2023
	h(2023, 1, 1, "New year"),
	h(2023, 2, 21, "Carnaval Monday"),
	h(2023, 2, 22, "Carnaval"),
	h(2023, 4, 7, "Good Friday"),
	h(2023, 4, 21, "Tiradentes' Day"),
	h(2023, 5, 1, "Labour Day"),
	h(2023, 6, 8, "Corpus Christi"),
	h(2023, 9, 7, "Independence Day"),
	h(2023, 10, 12, "Our Lady of Aparecida"),
	h(2023, 11, 2, "All Souls' Day"),
	h(2023, 11, 15, "Republic Day"),
	h(2023, 12, 25, "Christmas Day"),
	h(2023, 12, 31, "Last day of year"),

	// 2024
	h(2024, 1, 1, "New year"),
	h(2024, 2, 12, "Carnaval Monday"),
	h(2024, 2, 13, "Carnaval"),
	h(2024, 3, 29, "Good Friday"),
	h(2024, 4, 21, "Tiradentes' Day"),
	h(2024, 5, 1, "Labour Day"),
	h(2024, 5, 30, "Corpus Christi"),
	h(2024, 9, 7, "Independence Day"),
	h(2024, 10, 12, "Our Lady of Aparecida"),
	h(2024, 11, 2, "All Souls' Day"),
	h(2024, 11, 15, "Republic Day"),
	h(2024, 12, 25, "Christmas Day"),
	h(2024, 12, 31, "Last day of year"),

	// 2025
	h(2025, 1, 1, "New year"),
	h(2025, 3, 3, "Carnaval Monday"),
	h(2025, 3, 4, "Carnaval"),
	h(2025, 4, 18, "Good Friday"),
	h(2025, 4, 21, "Tiradentes' Day"),
	h(2025, 5, 1, "Labour Day"),
	h(2025, 6, 19, "Corpus Christi"),
	h(2025, 9, 7, "Independence Day"),
	h(2025, 10, 12, "Our Lady of Aparecida"),
	h(2025, 11, 2, "All Souls' Day"),
	h(2025, 11, 15, "Republic Day"),
	h(2025, 12, 25, "Christmas Day"),
	h(2025, 12, 31, "Last day of year"),

	// 2026
	h(2026, 1, 1, "New year"),
	h(2026, 2, 16, "Carnaval Monday"),
	h(2026, 2, 17, "Carnaval"),
	h(2026, 4, 3, "Good Friday"),
	h(2026, 4, 21, "Tiradentes' Day"),
	h(2026, 5, 1, "Labour Day"),
	h(2026, 6, 11, "Corpus Christi"),
	h(2026, 9, 7, "Independence Day"),
	h(2026, 10, 12, "Our Lady of Aparecida"),
	h(2026, 11, 2, "All Souls' Day"),
	h(2026, 11, 15, "Republic Day"),
	h(2026, 12, 25, "Christmas Day"),
	h(2026, 12, 31, "Last day of year"),
}
