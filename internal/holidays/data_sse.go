package holidays

import "market-holidays/internal/model"

// sseHolidays lists Shanghai Stock Exchange closures.
// Source: http://www.sse.com.cn/
var sseHolidays = []model.Holiday{
	// 2020
	h(2020, 1, 1, "New Year's Day"),
	h(2020, 1, 24, "Chinese New Year"),
	h(2020, 1, 27, "Chinese New Year Holiday"),
	h(2020, 1, 28, "Chinese New Year Holiday"),
	h(2020, 1, 29, "Chinese New Year Holiday"),
	h(2020, 1, 30, "Chinese New Year Holiday"),
	h(2020, 4, 6, "Qingming Festival"),
	h(2020, 5, 1, "Labour Day"),
	h(2020, 5, 4, "Labour Day Holiday"),
	h(2020, 5, 5, "Labour Day Holiday"),
	h(2020, 6, 25, "Dragon Boat Festival"),
	h(2020, 6, 26, "Dragon Boat Festival Holiday"),
	h(2020, 10, 1, "National Day"),
	h(2020, 10, 2, "National Day Holiday"),
	h(2020, 10, 5, "National Day Holiday"),
	h(2020, 10, 6, "National Day Holiday"),
	h(2020, 10, 7, "National Day Holiday"),
	h(2020, 10, 8, "National Day Holiday"),

	// 2021
	h(2021, 1, 1, "New Year's Day"),
	h(2021, 2, 11, "Chinese New Year"),
	h(2021, 2, 12, "Chinese New Year Holiday"),
	h(2021, 2, 15, "Chinese New Year Holiday"),
	h(2021, 2, 16, "Chinese New Year Holiday"),
	h(2021, 2, 17, "Chinese New Year Holiday"),
	h(2021, 4, 5, "Qingming Festival"),
	h(2021, 5, 1, "Labour Day"),
	h(2021, 5, 3, "Labour Day Holiday"),
	h(2021, 5, 4, "Labour Day Holiday"),
	h(2021, 5, 5, "Labour Day Holiday"),
	h(2021, 6, 14, "Dragon Boat Festival"),
	h(2021, 9, 20, "Mid-Autumn Festival"),
	h(2021, 9, 21, "Mid-Autumn Festival Holiday"),
	h(2021, 10, 1, "National Day"),
	h(2021, 10, 4, "National Day Holiday"),
	h(2021, 10, 5, "National Day Holiday"),
	h(2021, 10, 6, "National Day Holiday"),
	h(2021, 10, 7, "National Day Holiday"),

	// 2022
	h(2022, 1, 1, "New Year's Day"),
	h(2022, 1, 3, "New Year Holiday"),
	h(2022, 1, 31, "Chinese New Year"),
	h(2022, 2, 1, "Chinese New Year Holiday"),
	h(2022, 2, 2, "Chinese New Year Holiday"),
	h(2022, 2, 3, "Chinese New Year Holiday"),
	h(2022, 2, 4, "Chinese New Year Holiday"),
	h(2022, 4, 4, "Qingming Festival"),
	h(2022, 4, 5, "Qingming Festival Holiday"),
	h(2022, 5, 2, "Labour Day"),
	h(2022, 5, 3, "Labour Day Holiday"),
	h(2022, 5, 4, "Labour Day Holiday"),
	h(2022, 6, 3, "Dragon Boat Festival"),
	h(2022, 9, 12, "Mid-Autumn Festival"),
	h(2022, 10, 3, "National Day"),
	h(2022, 10, 4, "National Day Holiday"),
	h(2022, 10, 5, "National Day Holiday"),
	h(2022, 10, 6, "National Day Holiday"),
	h(2022, 10, 7, "National Day Holiday"),

	// 2023
	h(2023, 1, 1, "New Year's Day"),
	h(2023, 1, 2, "New Year Holiday"),
	h(2023, 1, 23, "Chinese New Year"),
	h(2023, 1, 24, "Chinese New Year Holiday"),
	h(2023, 1, 25, "Chinese New Year Holiday"),
	h(2023, 1, 26, "Chinese New Year Holiday"),
	h(2023, 1, 27, "Chinese New Year Holiday"),
	h(2023, 4, 5, "Qingming Festival"),
	h(2023, 5, 1, "Labour Day"),
	h(2023, 5, 2, "Labour Day Holiday"),
	h(2023, 5, 3, "Labour Day Holiday"),
	h(2023, 6, 22, "Dragon Boat Festival"),
	h(2023, 6, 23, "Dragon Boat Festival Holiday"),
	h(2023, 9, 29, "Mid-Autumn Festival"),
	h(2023, 10, 2, "National Day"),
	h(2023, 10, 3, "National Day Holiday"),
	h(2023, 10, 4, "National Day Holiday"),
	h(2023, 10, 5, "National Day Holiday"),
	h(2023, 10, 6, "National Day Holiday"),

	// 2024
	h(2024, 1, 1, "New Year's Day"),
	h(2024, 2, 10, "Chinese New Year"),
	h(2024, 2, 11, "Chinese New Year Holiday"),
	h(2024, 2, 12, "Chinese New Year Holiday"),
	h(2024, 2, 13, "Chinese New Year Holiday"),
	h(2024, 2, 14, "Chinese New Year Holiday"),
	h(2024, 4, 4, "Qingming Festival"),
	h(2024, 4, 5, "Qingming Festival Holiday"),
	h(2024, 5, 1, "Labour Day"),
	h(2024, 5, 2, "Labour Day Holiday"),
	h(2024, 5, 3, "Labour Day Holiday"),
	h(2024, 6, 10, "Dragon Boat Festival"),
	h(2024, 9, 17, "Mid-Autumn Festival"),
	h(2024, 10, 1, "National Day"),
	h(2024, 10, 2, "National Day Holiday"),
	h(2024, 10, 3, "National Day Holiday"),
	h(2024, 10, 4, "National Day Holiday"),
	h(2024, 10, 7, "National Day Holiday"),

	// 2025
	h(2025, 1, 1, "New Year's Day"),
	h(2025, 1, 29, "Chinese New Year"),
	h(2025, 1, 30, "Chinese New Year Holiday"),
	h(2025, 1, 31, "Chinese New Year Holiday"),
	h(2025, 2, 3, "Chinese New Year Holiday"),
	h(2025, 2, 4, "Chinese New Year Holiday"),
	h(2025, 4, 4, "Qingming Festival"),
	h(2025, 5, 1, "Labour Day"),
	h(2025, 5, 2, "Labour Day Holiday"),
	h(2025, 5, 5, "Labour Day Holiday"),
	h(2025, 5, 31, "Dragon Boat Festival"),
	h(2025, 10, 1, "National Day"),
	h(2025, 10, 2, "National Day Holiday"),
	h(2025, 10, 3, "National Day Holiday"),
	h(2025, 10, 6, "National Day Holiday"),
	h(2025, 10, 7, "National Day Holiday"),

	// 2026
	h(2026, 1, 1, "New year"),
	h(2026, 1, 29, "Chinese New Year"),
	h(2026, 1, 30, "Chinese New Year Holiday"),
	h(2026, 1, 31, "Chinese New Year Holiday"),
	h(2026, 2, 3, "Chinese New Year Holiday"),
	h(2026, 2, 4, "Chinese New Year Holiday"),
	h(2026, 4, 4, "Qingming Festival"),
	h(2026, 5, 1, "Labour Day"),
	h(2026, 5, 2, "Labour Day Holiday"),
	h(2026, 5, 5, "Labour Day Holiday"),
	h(2026, 5, 31, "Dragon Boat Festival"),
	h(2026, 10, 1, "National Day"),
	h(2026, 10, 2, "National Day Holiday"),
	h(2026, 10, 3, "National Day Holiday"),
	h(2026, 10, 6, "National Day Holiday"),
	h(2026, 10, 7, "National Day Holiday"),
}
