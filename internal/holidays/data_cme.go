package holidays

import "market-holidays/internal/model"

// cmeHolidays lists Chicago Mercantile Exchange (equity and interest rate products) closures.
// Source: https://www.cmegroup.com/tools-information/holiday-calendar.html
var cmeHolidays = []model.Holiday{
	// 2020
	h(2020, 1, 1, "New year"),
	h(2020, 1, 20, "Martin Luther King, Jr. Day"),
	h(2020, 2, 17, "Washington's Birthday"),
	h(2020, 4, 10, "Good Friday"),
	h(2020, 5, 25, "Memorial Day"),
	h(2020, 7, 4, "Independence Day"),
	h(2020, 9, 7, "Labor Day"),
	h(2020, 11, 26, "Thanksgiving Day"),
	h(2020, 12, 25, "Christmas Day"),
	h(2020, 12, 31, "Last day of year"),

	// 2021
	h(2021, 1, 1, "New year"),
	h(2021, 1, 18, "Martin Luther King, Jr. Day"),
	h(2021, 2, 15, "Washington's Birthday"),
	h(2021, 4, 2, "Good Friday"),
	h(2021, 5, 31, "Memorial Day"),
	h(2021, 7, 4, "Independence Day"),
	h(2021, 9, 6, "Labor Day"),
	h(2021, 11, 25, "Thanksgiving Day"),
	h(2021, 12, 25, "Christmas Day"),
	h(2021, 12, 31, "Last day of year"),

	// 2022
	h(2022, 1, 1, "New year"),
	h(2022, 1, 17, "Martin Luther King, Jr. Day"),
	h(2022, 2, 21, "Washington's Birthday"),
	h(2022, 4, 15, "Good Friday"),
	h(2022, 5, 30, "Memorial Day"),
	h(2022, 6, 20, "Juneteenth National Independence Day"),
	h(2022, 7, 4, "Independence Day"),
	h(2022, 9, 5, "Labor Day"),
	h(2022, 11, 24, "Thanksgiving Day"),
	h(2022, 12, 25, "Christmas Day"),
	h(2022, 12, 31, "Last day of year"),

	// 2023
	h(2023, 1, 1, "New year"),
	h(2023, 1, 16, "Martin Luther King, Jr. Day"),
	h(2023, 2, 20, "Washington's Birthday"),
	h(2023, 4, 7, "Good Friday"),
	h(2023, 5, 29, "Memorial Day"),
	h(2023, 6, 19, "Juneteenth National Independence Day"),
	h(2023, 7, 4, "Independence Day"),
	h(2023, 9, 4, "Labor Day"),
	h(2023, 11, 23, "Thanksgiving Day"),
	h(2023, 12, 25, "Christmas Day"),
	h(2023, 12, 31, "Last day of year"),

	// 2024
	h(2024, 1, 1, "New year"),
	h(2024, 1, 15, "Martin Luther King, Jr. Day"),
	h(2024, 2, 19, "Washington's Birthday"),
	h(2024, 3, 29, "Good Friday"),
	h(2024, 5, 27, "Memorial Day"),
	h(2024, 6, 19, "Juneteenth National Independence Day"),
	h(2024, 7, 4, "Independence Day"),
	h(2024, 9, 2, "Labor Day"),
	h(2024, 11, 28, "Thanksgiving Day"),
	h(2024, 12, 25, "Christmas Day"),
	h(2024, 12, 31, "Last day of year"),

	// 2025
	h(2025, 1, 1, "New year"),
	h(2025, 1, 20, "Martin Luther King, Jr. Day"),
	h(2025, 2, 17, "Washington's Birthday"),
	h(2025, 4, 18, "Good Friday"),
	h(2025, 5, 26, "Memorial Day"),
	h(2025, 6, 19, "Juneteenth National Independence Day"),
	h(2025, 7, 4, "Independence Day"),
	h(2025, 9, 1, "Labor Day"),
	h(2025, 11, 27, "Thanksgiving Day"),
	h(2025, 12, 25, "Christmas Day"),
	h(2025, 12, 31, "Last day of year"),

	// 2026
	h(2026, 1, 1, "New year"),
	h(2026, 1, 19, "Martin Luther King, Jr. Day"),
	h(2026, 2, 16, "Washington's Birthday"),
	h(2026, 4, 3, "Good Friday"),
	h(2026, 5, 25, "Memorial Day"),
	h(2026, 6, 19, "Juneteenth National Independence Day"),
	h(2026, 7, 4, "Independence Day"),
	h(2026, 9, 7, "Labor Day"),
	h(2026, 11, 26, "Thanksgiving Day"),
	h(2026, 12, 25, "Christmas Day"),
	h(2026, 12, 31, "Last day of year"),
}
