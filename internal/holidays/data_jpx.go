package holidays

import "market-holidays/internal/model"

// jpxHolidays lists Japan Exchange Group, Tokyo Stock Exchange closures.
// Source: https://www.jpx.co.jp/english/corporate/about-jpx/calendar/
var jpxHolidays = []model.Holiday{
	// 2020
	h(2020, 1, 1, "New Year's Day"),
	h(2020, 1, 2, "New Year's Holiday"),
	h(2020, 1, 3, "New Year's Holiday"),
	h(2020, 1, 13, "Coming of Age Day"),
	h(2020, 2, 11, "National Foundation Day"),
	h(2020, 2, 24, "Emperor's Birthday"),
	h(2020, 3, 20, "Vernal Equinox Day"),
	h(2020, 4, 29, "Showa Day"),
	h(2020, 5, 4, "Greenery Day"),
	h(2020, 5, 5, "Children's Day"),
	h(2020, 5, 6, "Constitution Memorial Day observed"),
	h(2020, 7, 23, "Marine Day"),
	h(2020, 7, 24, "Health and Sports Day"),
	h(2020, 8, 10, "Mountain Day"),
	h(2020, 9, 21, "Respect for the Aged Day"),
	h(2020, 9, 22, "Autumnal Equinox Day"),
	h(2020, 11, 3, "Culture Day"),
	h(2020, 11, 23, "Labor Thanksgiving Day"),
	h(2020, 12, 31, "New Year's Eve"),

	// 2021
	h(2021, 1, 1, "New Year's Day"),
	h(2021, 1, 2, "New Year's Holiday"),
	h(2021, 1, 3, "New Year's Holiday"),
	h(2021, 1, 11, "Coming of Age Day"),
	h(2021, 2, 11, "National Foundation Day"),
	h(2021, 2, 23, "Emperor's Birthday"),
	h(2021, 3, 20, "Vernal Equinox Day"),
	h(2021, 4, 29, "Showa Day"),
	h(2021, 5, 3, "Constitution Memorial Day"),
	h(2021, 5, 4, "Greenery Day"),
	h(2021, 5, 5, "Children's Day"),
	h(2021, 7, 22, "Marine Day"),
	h(2021, 7, 23, "Health and Sports Day"),
	h(2021, 8, 8, "Mountain Day"),
	h(2021, 8, 9, "Mountain Day observed"),
	h(2021, 9, 20, "Respect for the Aged Day"),
	h(2021, 9, 23, "Autumnal Equinox Day"),
	h(2021, 11, 3, "Culture Day"),
	h(2021, 11, 23, "Labor Thanksgiving Day"),
	h(2021, 12, 31, "New Year's Eve"),

	// 2022
	h(2022, 1, 1, "New Year's Day"),
	h(2022, 1, 3, "New Year's Holiday"),
	h(2022, 1, 10, "Coming of Age Day"),
	h(2022, 2, 11, "National Foundation Day"),
	h(2022, 2, 23, "Emperor's Birthday"),
	h(2022, 3, 21, "Vernal Equinox Day"),
	h(2022, 4, 29, "Showa Day"),
	h(2022, 5, 3, "Constitution Memorial Day"),
	h(2022, 5, 4, "Greenery Day"),
	h(2022, 5, 5, "Children's Day"),
	h(2022, 7, 18, "Marine Day"),
	h(2022, 8, 11, "Mountain Day"),
	h(2022, 9, 19, "Respect for the Aged Day"),
	h(2022, 9, 23, "Autumnal Equinox Day"),
	h(2022, 10, 10, "Health and Sports Day"),
	h(2022, 11, 3, "Culture Day"),
	h(2022, 11, 23, "Labor Thanksgiving Day"),
	h(2022, 12, 31, "New Year's Eve"),

	// 2023
	h(2023, 1, 1, "New Year's Day"),
	h(2023, 1, 2, "New Year's Holiday"),
	h(2023, 1, 3, "New Year's Holiday"),
	h(2023, 1, 9, "Coming of Age Day"),
	h(2023, 2, 11, "National Foundation Day"),
	h(2023, 2, 23, "Emperor's Birthday"),
	h(2023, 3, 21, "Vernal Equinox Day"),
	h(2023, 4, 29, "Showa Day"),
	h(2023, 5, 3, "Constitution Memorial Day"),
	h(2023, 5, 4, "Greenery Day"),
	h(2023, 5, 5, "Children's Day"),
	h(2023, 7, 17, "Marine Day"),
	h(2023, 8, 11, "Mountain Day"),
	h(2023, 9, 18, "Respect for the Aged Day"),
	h(2023, 9, 23, "Autumnal Equinox Day"),
	h(2023, 10, 9, "Health and Sports Day"),
	h(2023, 11, 3, "Culture Day"),
	h(2023, 11, 23, "Labor Thanksgiving Day"),
	h(2023, 12, 31, "New Year's Eve"),

	// 2024
	h(2024, 1, 1, "New Year's Day"),
	h(2024, 1, 2, "New Year's Holiday"),
	h(2024, 1, 3, "New Year's Holiday"),
	h(2024, 1, 8, "Coming of Age Day"),
	h(2024, 2, 11, "National Foundation Day"),
	h(2024, 2, 12, "National Foundation Day observed"),
	h(2024, 2, 23, "Emperor's Birthday"),
	h(2024, 3, 20, "Vernal Equinox Day"),
	h(2024, 4, 29, "Showa Day"),
	h(2024, 5, 3, "Constitution Memorial Day"),
	h(2024, 5, 4, "Greenery Day"),
	h(2024, 5, 5, "Children's Day"),
	h(2024, 5, 6, "Children's Day observed"),
	h(2024, 7, 15, "Marine Day"),
	h(2024, 8, 11, "Mountain Day"),
	h(2024, 8, 12, "Mountain Day observed"),
	h(2024, 9, 16, "Respect for the Aged Day"),
	h(2024, 9, 22, "Autumnal Equinox Day"),
	h(2024, 9, 23, "Autumnal Equinox Day observed"),
	h(2024, 10, 14, "Health and Sports Day"),
	h(2024, 11, 3, "Culture Day"),
	h(2024, 11, 4, "Culture Day observed"),
	h(2024, 11, 23, "Labor Thanksgiving Day"),
	h(2024, 12, 31, "New Year's Eve"),

	// 2025
	h(2025, 1, 1, "New Year's Day"),
	h(2025, 1, 2, "New Year's Holiday"),
	h(2025, 1, 3, "New Year's Holiday"),
	h(2025, 1, 13, "Coming of Age Day"),
	h(2025, 2, 11, "National Foundation Day"),
	h(2025, 2, 23, "Emperor's Birthday"),
	h(2025, 2, 24, "Emperor's Birthday observed"),
	h(2025, 3, 20, "Vernal Equinox Day"),
	h(2025, 4, 29, "Showa Day"),
	h(2025, 5, 3, "Constitution Memorial Day"),
	h(2025, 5, 4, "Greenery Day"),
	h(2025, 5, 5, "Children's Day"),
	h(2025, 5, 6, "Children's Day observed"),
	h(2025, 7, 21, "Marine Day"),
	h(2025, 8, 11, "Mountain Day"),
	h(2025, 9, 15, "Respect for the Aged Day"),
	h(2025, 9, 23, "Autumnal Equinox Day"),
	h(2025, 10, 13, "Health and Sports Day"),
	h(2025, 11, 3, "Culture Day"),
	h(2025, 11, 23, "Labor Thanksgiving Day"),
	h(2025, 11, 24, "Labor Thanksgiving Day observed"),
	h(2025, 12, 31, "New Year's Eve"),

	// 2026
	h(2026, 1, 1, "New Year's Day"),
	h(2026, 1, 2, "New Year's Holiday"),
	h(2026, 1, 3, "New Year's Holiday"),
	h(2026, 1, 13, "Coming of Age Day"),
	h(2026, 2, 11, "National Foundation Day"),
	h(2026, 2, 23, "Emperor's Birthday"),
	h(2026, 2, 24, "Emperor's Birthday observed"),
	h(2026, 3, 20, "Vernal Equinox Day"),
	h(2026, 4, 29, "Showa Day"),
	h(2026, 5, 3, "Constitution Memorial Day"),
	h(2026, 5, 4, "Greenery Day"),
	h(2026, 5, 5, "Children's Day"),
	h(2026, 5, 6, "Children's Day observed"),
	h(2026, 7, 21, "Marine Day"),
	h(2026, 8, 11, "Mountain Day"),
	h(2026, 9, 15, "Respect for the Aged Day"),
	h(2026, 9, 23, "Autumnal Equinox Day"),
	h(2026, 10, 13, "Health and Sports Day"),
	h(2026, 11, 3, "Culture Day"),
	h(2026, 11, 23, "Labor Thanksgiving Day"),
	h(2026, 11, 24, "Labor Thanksgiving Day observed"),
	h(2026, 12, 31, "New Year's Eve"),
}
