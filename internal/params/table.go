// Package params implements RFC 6330's fixed parameter derivation: the
// 477-row K'/J/S/H/W ladder (table2.hpp in the original implementation),
// the degree distribution (degree.hpp), and the L/P/U/B/P1/J parameters
// derived from a chosen K'.
package params

// kPadded is the strictly increasing ladder of padded source-symbol counts K'.
var kPadded = [477]uint32{
	10, 12, 22, 24, 30, 34, 36, 40, 46, 52, 54, 55,
	60, 63, 65, 71, 81, 89, 93, 95, 99, 101, 105, 119,
	123, 129, 131, 141, 143, 155, 159, 165, 170, 172, 182, 184,
	188, 190, 202, 214, 224, 232, 242, 248, 254, 262, 268, 273,
	283, 297, 303, 307, 327, 339, 343, 349, 357, 363, 369, 378,
	386, 390, 398, 410, 422, 432, 438, 450, 456, 468, 479, 487,
	491, 497, 511, 529, 535, 545, 551, 559, 565, 575, 581, 588,
	594, 600, 606, 618, 634, 640, 648, 670, 678, 688, 695, 705,
	719, 729, 737, 747, 759, 783, 796, 806, 814, 824, 838, 848,
	862, 872, 892, 903, 913, 925, 937, 955, 967, 981, 993, 1004,
	1022, 1034, 1052, 1076, 1086, 1100, 1111, 1135, 1153, 1169, 1183, 1205,
	1218, 1240, 1258, 1272, 1288, 1308, 1347, 1361, 1389, 1403, 1418, 1438,
	1462, 1478, 1502, 1521, 1537, 1561, 1579, 1599, 1615, 1646, 1676, 1700,
	1718, 1735, 1759, 1777, 1799, 1823, 1842, 1864, 1888, 1906, 1926, 1953,
	1977, 2003, 2043, 2072, 2104, 2126, 2151, 2193, 2215, 2245, 2282, 2318,
	2342, 2369, 2393, 2417, 2447, 2472, 2500, 2526, 2562, 2601, 2639, 2667,
	2698, 2734, 2768, 2799, 2827, 2875, 2904, 2936, 2976, 3013, 3053, 3100,
	3150, 3184, 3221, 3261, 3308, 3352, 3394, 3429, 3471, 3506, 3542, 3582,
	3617, 3659, 3697, 3750, 3790, 3837, 3879, 3922, 3968, 4012, 4065, 4113,
	4164, 4206, 4249, 4315, 4360, 4414, 4463, 4517, 4570, 4628, 4681, 4731,
	4778, 4836, 4897, 4949, 5004, 5058, 5115, 5170, 5222, 5275, 5329, 5384,
	5448, 5503, 5563, 5632, 5688, 5759, 5818, 5890, 5973, 6036, 6098, 6163,
	6232, 6294, 6359, 6422, 6512, 6583, 6648, 6732, 6799, 6876, 6953, 7029,
	7102, 7177, 7274, 7356, 7439, 7512, 7589, 7678, 7772, 7855, 7934, 8027,
	8106, 8188, 8283, 8380, 8475, 8558, 8651, 8740, 8831, 8921, 9010, 9105,
	9198, 9295, 9394, 9489, 9598, 9703, 9806, 9907, 10008, 10119, 10238, 10347,
	10452, 10559, 10672, 10781, 10892, 11007, 11125, 11238, 11355, 11470, 11583, 11702,
	11821, 11951, 12080, 12199, 12326, 12451, 12593, 12724, 12853, 12995, 13134, 13287,
	13417, 13556, 13691, 13827, 13966, 14109, 14263, 14406, 14552, 14703, 14864, 15010,
	15167, 15319, 15488, 15646, 15801, 15967, 16157, 16329, 16496, 16664, 16843, 17013,
	17187, 17366, 17554, 17734, 17918, 18108, 18299, 18495, 18683, 18899, 19119, 19315,
	19533, 19731, 19931, 20141, 20349, 20555, 20777, 20983, 21191, 21401, 21627, 21847,
	22064, 22290, 22528, 22768, 22999, 23243, 23487, 23723, 23960, 24204, 24467, 24709,
	24973, 25222, 25482, 25749, 26011, 26280, 26559, 26827, 27100, 27383, 27681, 27954,
	28239, 28536, 28847, 29137, 29428, 29721, 30028, 30333, 30648, 30963, 31276, 31597,
	31938, 32263, 32597, 32924, 33275, 33612, 33950, 34295, 34642, 35020, 35385, 35747,
	36104, 36476, 36841, 37215, 37599, 37980, 38374, 38784, 39168, 39567, 39971, 40393,
	40815, 41219, 41637, 42057, 42485, 42912, 43378, 43830, 44269, 44725, 45173, 45628,
	46100, 46563, 47049, 47518, 47996, 48481, 48974, 49462, 49975, 50502, 51007, 51526,
	52065, 52582, 53107, 53641, 54186, 54727, 55280, 55850, 56403,
}

// jIdx is RFC 6330's systematic index J for each row of kPadded.
var jIdx = [477]uint16{
	254, 630, 682, 293, 80, 566, 860, 267, 822, 506, 589, 87,
	520, 159, 235, 157, 502, 334, 583, 66, 352, 365, 562, 5,
	603, 721, 28, 660, 829, 900, 930, 814, 661, 693, 780, 605,
	551, 777, 491, 396, 764, 843, 646, 557, 608, 265, 505, 722,
	263, 999, 874, 160, 575, 210, 513, 503, 558, 932, 404, 520,
	846, 485, 728, 554, 471, 641, 732, 193, 934, 864, 790, 912,
	617, 587, 800, 923, 998, 92, 497, 559, 667, 912, 262, 152,
	526, 268, 212, 45, 898, 527, 558, 460, 5, 895, 996, 282,
	513, 865, 870, 239, 452, 862, 852, 643, 543, 447, 321, 287,
	12, 251, 30, 621, 555, 127, 400, 91, 916, 935, 691, 299,
	282, 824, 536, 596, 28, 947, 162, 536, 1000, 251, 673, 559,
	923, 81, 478, 198, 137, 75, 29, 231, 532, 58, 60, 964,
	624, 502, 636, 986, 950, 735, 866, 203, 83, 14, 522, 226,
	282, 88, 636, 860, 324, 424, 999, 682, 814, 979, 538, 278,
	580, 773, 911, 506, 628, 282, 309, 858, 442, 654, 82, 428,
	442, 283, 538, 189, 438, 912, 1, 167, 272, 209, 927, 386,
	653, 669, 431, 793, 588, 777, 939, 864, 627, 265, 976, 988,
	507, 640, 15, 667, 24, 877, 240, 720, 93, 919, 635, 174,
	647, 820, 56, 485, 210, 124, 546, 954, 262, 927, 957, 726,
	583, 782, 37, 758, 777, 104, 476, 113, 313, 102, 501, 332,
	786, 99, 658, 794, 37, 471, 94, 873, 918, 945, 211, 341,
	11, 578, 494, 694, 252, 451, 83, 689, 488, 214, 17, 469,
	263, 309, 984, 123, 360, 863, 122, 522, 539, 181, 64, 387,
	967, 843, 999, 76, 142, 599, 576, 176, 392, 332, 291, 913,
	608, 212, 696, 931, 326, 228, 706, 144, 83, 743, 187, 654,
	359, 493, 369, 981, 276, 647, 389, 80, 396, 580, 873, 15,
	976, 584, 267, 876, 642, 794, 78, 736, 882, 251, 434, 204,
	256, 106, 375, 148, 496, 88, 826, 71, 925, 760, 130, 641,
	400, 480, 76, 665, 910, 467, 964, 625, 362, 759, 728, 343,
	113, 137, 308, 800, 177, 961, 958, 72, 732, 145, 577, 305,
	50, 351, 175, 727, 902, 409, 776, 586, 451, 287, 246, 222,
	563, 839, 897, 409, 618, 439, 95, 448, 133, 938, 423, 90,
	640, 922, 250, 367, 447, 559, 121, 623, 450, 253, 106, 863,
	148, 427, 138, 794, 247, 562, 53, 135, 21, 201, 169, 70,
	386, 226, 3, 769, 590, 672, 713, 967, 368, 348, 119, 503,
	181, 394, 189, 210, 62, 273, 554, 936, 483, 397, 241, 500,
	12, 958, 524, 8, 100, 339, 804, 510, 18, 412, 394, 830,
	535, 199, 27, 298, 368, 755, 379, 73, 387, 457, 761, 855,
	370, 261, 299, 920, 269, 862, 349, 103, 115, 93, 982, 432,
	340, 173, 421, 330, 624, 233, 362, 963, 471,
}

// sVal, hVal, wVal are the LDPC1 row count S, HDPC row count H, and LT symbol count W
// for each row of kPadded.
var sVal = [477]uint16{
	7, 7, 11, 11, 11, 11, 11, 11, 11, 13, 13, 13,
	13, 13, 13, 13, 17, 17, 17, 17, 17, 17, 17, 19,
	19, 19, 19, 19, 19, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 29, 29, 29, 29, 29, 29, 29, 29,
	29, 29, 29, 29, 31, 31, 31, 31, 31, 31, 31, 37,
	37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37, 37,
	37, 37, 37, 41, 41, 41, 41, 41, 41, 41, 41, 41,
	41, 41, 41, 41, 43, 43, 43, 47, 47, 47, 47, 47,
	47, 47, 47, 47, 47, 53, 53, 53, 53, 53, 53, 53,
	53, 53, 53, 53, 53, 53, 53, 59, 59, 59, 59, 59,
	59, 59, 59, 59, 59, 59, 59, 59, 61, 61, 61, 61,
	61, 67, 67, 67, 67, 67, 67, 67, 67, 67, 67, 71,
	71, 71, 71, 71, 71, 73, 73, 73, 73, 73, 79, 79,
	79, 79, 79, 79, 79, 79, 79, 83, 83, 83, 83, 83,
	83, 83, 89, 89, 89, 89, 89, 89, 89, 89, 97, 97,
	97, 97, 97, 97, 97, 97, 97, 97, 97, 101, 101, 101,
	101, 101, 101, 103, 103, 107, 107, 107, 107, 109, 109, 113,
	113, 113, 113, 113, 127, 127, 127, 127, 127, 127, 127, 127,
	127, 127, 127, 127, 127, 127, 127, 131, 131, 131, 131, 137,
	137, 137, 137, 137, 137, 139, 139, 149, 149, 149, 149, 149,
	149, 149, 149, 149, 151, 151, 157, 157, 157, 157, 157, 157,
	163, 163, 163, 163, 163, 167, 167, 167, 173, 173, 173, 173,
	179, 179, 179, 179, 179, 181, 181, 191, 191, 191, 191, 191,
	191, 191, 193, 197, 197, 197, 199, 211, 211, 211, 211, 211,
	211, 211, 211, 223, 223, 223, 223, 223, 223, 223, 223, 227,
	227, 229, 233, 233, 239, 239, 239, 239, 241, 251, 251, 251,
	251, 251, 257, 257, 257, 257, 263, 263, 269, 269, 269, 269,
	271, 277, 277, 277, 281, 281, 293, 293, 293, 293, 293, 307,
	307, 307, 307, 307, 307, 311, 311, 313, 317, 317, 331, 331,
	331, 331, 331, 337, 337, 337, 347, 347, 347, 349, 353, 353,
	359, 359, 367, 367, 367, 373, 373, 379, 379, 383, 389, 389,
	397, 397, 401, 401, 409, 409, 419, 419, 419, 419, 431, 431,
	431, 433, 439, 439, 443, 449, 457, 457, 457, 461, 467, 467,
	479, 479, 479, 487, 487, 491, 499, 499, 503, 509, 521, 521,
	521, 523, 541, 541, 541, 541, 547, 547, 557, 557, 563, 569,
	571, 577, 587, 587, 593, 593, 599, 607, 607, 613, 619, 631,
	631, 641, 641, 643, 653, 653, 659, 673, 673, 677, 683, 691,
	701, 701, 709, 709, 719, 727, 727, 733, 739, 751, 751, 757,
	769, 769, 787, 787, 787, 797, 809, 809, 821, 821, 827, 839,
	853, 853, 857, 863, 877, 877, 883, 907, 907,
}

var hVal = [477]uint16{
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13,
	13, 13, 13, 13, 13, 13, 13, 13, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14,
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 15,
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15, 15, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 16,
}

var wVal = [477]uint32{
	17, 19, 29, 31, 37, 41, 43, 47, 53, 59, 61, 61,
	67, 71, 73, 79, 89, 97, 101, 103, 107, 109, 113, 127,
	131, 137, 139, 149, 151, 163, 167, 173, 179, 181, 191, 193,
	197, 199, 211, 223, 233, 241, 251, 257, 263, 271, 277, 283,
	293, 307, 313, 317, 337, 349, 353, 359, 367, 373, 379, 389,
	397, 401, 409, 421, 433, 443, 449, 461, 467, 479, 491, 499,
	503, 509, 523, 541, 547, 557, 563, 571, 577, 587, 593, 601,
	607, 613, 619, 631, 647, 653, 661, 683, 691, 701, 709, 719,
	733, 743, 751, 761, 773, 797, 811, 821, 829, 839, 853, 863,
	877, 887, 907, 919, 929, 941, 953, 971, 983, 997, 1009, 1021,
	1039, 1051, 1069, 1093, 1103, 1117, 1129, 1153, 1171, 1187, 1201, 1223,
	1237, 1259, 1277, 1291, 1307, 1327, 1367, 1381, 1409, 1423, 1439, 1459,
	1483, 1499, 1523, 1543, 1559, 1583, 1601, 1621, 1637, 1669, 1699, 1723,
	1741, 1759, 1783, 1801, 1823, 1847, 1867, 1889, 1913, 1931, 1951, 1979,
	2003, 2029, 2069, 2099, 2131, 2153, 2179, 2221, 2243, 2273, 2311, 2347,
	2371, 2399, 2423, 2447, 2477, 2503, 2531, 2557, 2593, 2633, 2671, 2699,
	2731, 2767, 2801, 2833, 2861, 2909, 2939, 2971, 3011, 3049, 3089, 3137,
	3187, 3221, 3259, 3299, 3347, 3391, 3433, 3469, 3511, 3547, 3583, 3623,
	3659, 3701, 3739, 3793, 3833, 3881, 3923, 3967, 4013, 4057, 4111, 4159,
	4211, 4253, 4297, 4363, 4409, 4463, 4513, 4567, 4621, 4679, 4733, 4783,
	4831, 4889, 4951, 5003, 5059, 5113, 5171, 5227, 5279, 5333, 5387, 5443,
	5507, 5563, 5623, 5693, 5749, 5821, 5881, 5953, 6037, 6101, 6163, 6229,
	6299, 6361, 6427, 6491, 6581, 6653, 6719, 6803, 6871, 6949, 7027, 7103,
	7177, 7253, 7351, 7433, 7517, 7591, 7669, 7759, 7853, 7937, 8017, 8111,
	8191, 8273, 8369, 8467, 8563, 8647, 8741, 8831, 8923, 9013, 9103, 9199,
	9293, 9391, 9491, 9587, 9697, 9803, 9907, 10009, 10111, 10223, 10343, 10453,
	10559, 10667, 10781, 10891, 11003, 11119, 11239, 11353, 11471, 11587, 11701, 11821,
	11941, 12073, 12203, 12323, 12451, 12577, 12721, 12853, 12983, 13127, 13267, 13421,
	13553, 13693, 13829, 13967, 14107, 14251, 14407, 14551, 14699, 14851, 15013, 15161,
	15319, 15473, 15643, 15803, 15959, 16127, 16319, 16493, 16661, 16831, 17011, 17183,
	17359, 17539, 17729, 17911, 18097, 18289, 18481, 18679, 18869, 19087, 19309, 19507,
	19727, 19927, 20129, 20341, 20551, 20759, 20983, 21191, 21401, 21613, 21841, 22063,
	22283, 22511, 22751, 22993, 23227, 23473, 23719, 23957, 24197, 24443, 24709, 24953,
	25219, 25471, 25733, 26003, 26267, 26539, 26821, 27091, 27367, 27653, 27953, 28229,
	28517, 28817, 29131, 29423, 29717, 30013, 30323, 30631, 30949, 31267, 31583, 31907,
	32251, 32579, 32917, 33247, 33601, 33941, 34283, 34631, 34981, 35363, 35731, 36097,
	36457, 36833, 37201, 37579, 37967, 38351, 38749, 39163, 39551, 39953, 40361, 40787,
	41213, 41621, 42043, 42467, 42899, 43331, 43801, 44257, 44701, 45161, 45613, 46073,
	46549, 47017, 47507, 47981, 48463, 48953, 49451, 49943, 50461, 50993, 51503, 52027,
	52571, 53093, 53623, 54163, 54713, 55259, 55817, 56393, 56951,
}

// degreeDistribution is RFC 6330 exact 31-entry cumulative degree table
// (the original degree.hpp), scaled to 2^20.
var degreeDistribution = [31]uint32{
	0, 5243, 529531, 704294, 791675, 844104,
	879057, 904023, 922747, 937311, 948962, 958494,
	966438, 973160, 978921, 983914, 988283, 992138,
	995565, 998631, 1001391, 1003887, 1006157, 1008229,
	1010129, 1011876, 1013490, 1014983, 1016370, 1017662,
	1048576,
}
