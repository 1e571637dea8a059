package gazetteer

// DefaultPlaces is the built-in geographic code table: every place name
// observed in strain descriptors together with its one- or two-letter code.
// The table is data, not behavior; callers with their own code table can
// construct a Directory from it instead.
var DefaultPlaces = []PlaceDef{
	{Code: "-A", Name: "SAUDI-ARABIA"},
	{Code: "-B", Name: "SUPHAN-BURI"},
	{Code: "-D", Name: "NORDRHEIN-WESTFALEN"},
	{Code: "-G", Name: "FRENCH-GUIANA"},
	{Code: "-H", Name: "SENDI-H"},
	{Code: "-I", Name: "RHODE-ISLAND"},
	{Code: "-K", Name: "SA-KAEO"},
	{Code: "-L", Name: "SRI-LANKA"},
	{Code: "-M", Name: "PUERTO-MONTT"},
	{Code: "-N", Name: "SAKON-NAKHON"},
	{Code: "-O", Name: "DISTRICT-OF-COLUMBIA"},
	{Code: "-P", Name: "ST-PETERSBURG"},
	{Code: "-S", Name: "SAN-SEBASTIAN"},
	{Code: "-T", Name: "SAN-ANTONIO"},
	{Code: "-V", Name: "MECKLENBURG-VORPO."},
	{Code: "AA", Name: "ANNARBOR"},
	{Code: "AB", Name: "ALABAMA"},
	{Code: "AC", Name: "AICHI"},
	{Code: "AD", Name: "ALBANIA"},
	{Code: "AE", Name: "ALGERIA"},
	{Code: "AF", Name: "SOUTH-AFRICA"},
	{Code: "AG", Name: "ARGENTINA"},
	{Code: "AH", Name: "AUSTRIA"},
	{Code: "AI", Name: "ASTURIAS"},
	{Code: "AJ", Name: "SAKAI"},
	{Code: "AK", Name: "AKITA"},
	{Code: "AL", Name: "AUSTRALIA"},
	{Code: "AM", Name: "AMSTERDAM"},
	{Code: "AN", Name: "ANHUI"},
	{Code: "AO", Name: "AOMORI"},
	{Code: "AP", Name: "CHIANGMAI"},
	{Code: "AQ", Name: "ANG-THONG"},
	{Code: "AR", Name: "ARIZONA"},
	{Code: "AS", Name: "ALICESPRINGS"},
	{Code: "AT", Name: "ATLANTA"},
	{Code: "AU", Name: "AUCKLAND"},
	{Code: "AV", Name: "SANTIAGAO"},
	{Code: "AX", Name: "ALASKA"},
	{Code: "AY", Name: "AYTTHAYA"},
	{Code: "AZ", Name: "AYATTHAYA"},
	{Code: "BA", Name: "BANGKOK"},
	{Code: "BB", Name: "BILBAO"},
	{Code: "BC", Name: "BUCHAREST"},
	{Code: "BD", Name: "BADEN-WURTTEMBERG"},
	{Code: "BE", Name: "BEIJING"},
	{Code: "BF", Name: "BALEARES"},
	{Code: "BG", Name: "BELGIUM"},
	{Code: "BH", Name: "BELGRADE"},
	{Code: "BI", Name: "BILTHOVEN"},
	{Code: "BJ", Name: "BEIIJNG"},
	{Code: "BK", Name: "BANGKOKI"},
	{Code: "BL", Name: "BELEM"},
	{Code: "BM", Name: "BREMEN"},
	{Code: "BN", Name: "BERLIN"},
	{Code: "BO", Name: "BARCELONA"},
	{Code: "BP", Name: "BURIRUM"},
	{Code: "BQ", Name: "PATTANI"},
	{Code: "BR", Name: "BRISBANE"},
	{Code: "BS", Name: "BRASOV"},
	{Code: "BT", Name: "BAGKOK"},
	{Code: "BU", Name: "BUSAN"},
	{Code: "BV", Name: "PHARE"},
	{Code: "BW", Name: "PHICHIT"},
	{Code: "BX", Name: "BURIRAM"},
	{Code: "BY", Name: "BAYERN"},
	{Code: "BZ", Name: "BRAZIL"},
	{Code: "CA", Name: "CANBERRA"},
	{Code: "CB", Name: "CHIBA"},
	{Code: "CC", Name: "CHRISTCHURCH"},
	{Code: "CD", Name: "COLLINDALE"},
	{Code: "CE", Name: "CHEONNAM"},
	{Code: "CF", Name: "CALIFORNIA"},
	{Code: "CG", Name: "CHUNGNAM"},
	{Code: "CH", Name: "CHINA"},
	{Code: "CI", Name: "CAEN"},
	{Code: "CJ", Name: "CHEJU"},
	{Code: "CK", Name: "CHEONBUK"},
	{Code: "CL", Name: "CHILE"},
	{Code: "CM", Name: "CHIANGMAI"},
	{Code: "CN", Name: "CONNECTICUT"},
	{Code: "CO", Name: "COLORADO"},
	{Code: "CP", Name: "CLUJ"},
	{Code: "CQ", Name: "CANARIAS"},
	{Code: "CR", Name: "CHIANGRAI"},
	{Code: "CS", Name: "CALARASI"},
	{Code: "CT", Name: "CHITA"},
	{Code: "CU", Name: "CHANTABURI"},
	{Code: "CV", Name: "CARTAGENA"},
	{Code: "CW", Name: "CHANGWON"},
	{Code: "CZ", Name: "CZECHOSLOVAKIA"},
	{Code: "DA", Name: "DAEGU"},
	{Code: "DB", Name: "NY"},
	{Code: "DC", Name: "CA"},
	{Code: "DD", Name: "DUNDIN"},
	{Code: "DE", Name: "DELFT"},
	{Code: "DF", Name: "KYUNGGI"},
	{Code: "DG", Name: "PAU"},
	{Code: "DH", Name: "MILAN"},
	{Code: "DI", Name: "SALAMANCA"},
	{Code: "DJ", Name: "DAEJEON"},
	{Code: "DK", Name: "DAKAR"},
	{Code: "DL", Name: "CASABLANCA"},
	{Code: "DM", Name: "MEKNES"},
	{Code: "DN", Name: "DENMARK"},
	{Code: "DO", Name: "MARRAKECH"},
	{Code: "DP", Name: "AGADIR"},
	{Code: "DQ", Name: "ATHENS"},
	{Code: "DR", Name: "SANTANDER"},
	{Code: "DS", Name: "DESGENETTES"},
	{Code: "DU", Name: "DUNEDIN"},
	{Code: "DV", Name: "DEVA"},
	{Code: "DW", Name: "DARWIN"},
	{Code: "DX", Name: "TENNESEE"},
	{Code: "DY", Name: "BRANDYS"},
	{Code: "DZ", Name: "TRANG"},
	{Code: "EA", Name: "SIENA"},
	{Code: "EB", Name: "ANGTHONG"},
	{Code: "EC", Name: "ECUADOR"},
	{Code: "ED", Name: "NIEDERSACHSEN"},
	{Code: "EE", Name: "NEPAL"},
	{Code: "EF", Name: "KALASIN"},
	{Code: "EG", Name: "EGYPT"},
	{Code: "EH", Name: "EHIME"},
	{Code: "EI", Name: "EINDHOVEN"},
	{Code: "EJ", Name: "PHITSANULOK"},
	{Code: "EK", Name: "EKATERINBURG"},
	{Code: "EL", Name: "EL-SALVADOR"},
	{Code: "EM", Name: "PRACHUAPKHIRIKKAN"},
	{Code: "EN", Name: "ENGLAND"},
	{Code: "EO", Name: "CHACHOENGSAO"},
	{Code: "EP", Name: "NEW-HAMPSHIRE"},
	{Code: "EQ", Name: "EQUADOR"},
	{Code: "ER", Name: "TOMSK"},
	{Code: "ES", Name: "ENSCHEDE"},
	{Code: "ET", Name: "EXTREMAD"},
	{Code: "EU", Name: "EUSKADI"},
	{Code: "EV", Name: "PONTEVEORA"},
	{Code: "EX", Name: "EXTREMADURA"},
	{Code: "EY", Name: "KYOTO"},
	{Code: "EZ", Name: "EKATEZINBURG"},
	{Code: "FA", Name: "FATICK"},
	{Code: "FB", Name: "FUKUI"},
	{Code: "FC", Name: "FUKUOKA-C"},
	{Code: "FD", Name: "FES"},
	{Code: "FE", Name: "FIRENZE"},
	{Code: "FF", Name: "ANNECY"},
	{Code: "FG", Name: "MACU"},
	{Code: "FH", Name: "FOSHAN"},
	{Code: "FI", Name: "FINLAND"},
	{Code: "FJ", Name: "FIJI"},
	{Code: "FK", Name: "FUOKA"},
	{Code: "FL", Name: "FLORIDA"},
	{Code: "FM", Name: "SUKHBAATAR"},
	{Code: "FN", Name: "SAINSHAND"},
	{Code: "FO", Name: "FLORENCE"},
	{Code: "FP", Name: "CAMBODIA"},
	{Code: "FQ", Name: "HOLLAND"},
	{Code: "FR", Name: "FRANCE"},
	{Code: "FS", Name: "FUKUSHIMA"},
	{Code: "FT", Name: "DUBAI"},
	{Code: "FU", Name: "FUJIAN"},
	{Code: "FV", Name: "GANSUCHENGGUAN"},
	{Code: "FW", Name: "HONDURAS"},
	{Code: "FX", Name: "KALININGRAD"},
	{Code: "FY", Name: "ASTRAKHAN"},
	{Code: "FZ", Name: "FUZHOU"},
	{Code: "GA", Name: "GUAM"},
	{Code: "GB", Name: "GENOA"},
	{Code: "GC", Name: "GREECE"},
	{Code: "GD", Name: "GUANGDONG"},
	{Code: "GE", Name: "GENEVA"},
	{Code: "GF", Name: "GUILDFORD"},
	{Code: "GG", Name: "GEORGIA"},
	{Code: "GH", Name: "GIRONA"},
	{Code: "GI", Name: "GIFU"},
	{Code: "GJ", Name: "GUADALAJARA"},
	{Code: "GK", Name: "GOETEBORG"},
	{Code: "GL", Name: "GUALDALAGARA"},
	{Code: "GM", Name: "GUMMA"},
	{Code: "GN", Name: "GRANADA"},
	{Code: "GO", Name: "GOTENBORG"},
	{Code: "GP", Name: "GIFU-C"},
	{Code: "GQ", Name: "GALICIA"},
	{Code: "GR", Name: "GRONINGEN"},
	{Code: "GS", Name: "GANSU"},
	{Code: "GT", Name: "GOTEBORG"},
	{Code: "GU", Name: "GUIZHOU"},
	{Code: "GV", Name: "SEGOVIA"},
	{Code: "GW", Name: "GUNMA"},
	{Code: "GX", Name: "GUANGXI"},
	{Code: "GY", Name: "GERMANY"},
	{Code: "GZ", Name: "GUANGZHOU"},
	{Code: "HA", Name: "HAWAII"},
	{Code: "HB", Name: "HARBIN"},
	{Code: "HC", Name: "SACHSEN"},
	{Code: "HD", Name: "HOKKAIDO"},
	{Code: "HE", Name: "HEBEI"},
	{Code: "HF", Name: "HIROSHIMA"},
	{Code: "HG", Name: "HUNGARY"},
	{Code: "HH", Name: "SHIZUOKA"},
	{Code: "HI", Name: "HUBEI"},
	{Code: "HJ", Name: "HYOGO"},
	{Code: "HK", Name: "HONGKONG"},
	{Code: "HL", Name: "HIME"},
	{Code: "HM", Name: "HENAN"},
	{Code: "HN", Name: "HUNAN"},
	{Code: "HO", Name: "HOUSTON"},
	{Code: "HP", Name: "HONG-KONG"},
	{Code: "HQ", Name: "HAINAN"},
	{Code: "HS", Name: "HIROSHIMA-C"},
	{Code: "HT", Name: "HAMAMATU-C"},
	{Code: "HU", Name: "HUNTINGTON"},
	{Code: "HV", Name: "HANNOVER"},
	{Code: "HW", Name: "NAKHON-SAWAN"},
	{Code: "HX", Name: "SHAANXI"},
	{Code: "HY", Name: "CHANTHABURI"},
	{Code: "HZ", Name: "SHIZUOKA-C"},
	{Code: "IA", Name: "IASI"},
	{Code: "IB", Name: "IBARAKI"},
	{Code: "IC", Name: "INCHEON"},
	{Code: "ID", Name: "INDONESIA"},
	{Code: "IE", Name: "ICELAND"},
	{Code: "IF", Name: "IRAN"},
	{Code: "IH", Name: "IDAHO"},
	{Code: "II", Name: "INDIA"},
	{Code: "IJ", Name: "BEIJINGXUANWU"},
	{Code: "IK", Name: "ISHIKAWA"},
	{Code: "IL", Name: "ILLINOIS"},
	{Code: "IM", Name: "SHIMANE"},
	{Code: "IN", Name: "INDIANA"},
	{Code: "IO", Name: "SOLOMON-ISLANDS"},
	{Code: "IP", Name: "MURMANSK"},
	{Code: "IQ", Name: "STPETERSBURG"},
	{Code: "IR", Name: "IRELAND"},
	{Code: "IS", Name: "ISRAEL"},
	{Code: "IT", Name: "ITALY"},
	{Code: "IU", Name: "ISTANBUL"},
	{Code: "IV", Name: "INVERNESS"},
	{Code: "IW", Name: "IWATE"},
	{Code: "IX", Name: "BEIJINXUANWU"},
	{Code: "IY", Name: "CHAIYAPUM"},
	{Code: "IZ", Name: "HAMBURG"},
	{Code: "JA", Name: "JIANGXI"},
	{Code: "JB", Name: "BRANDENBURG"},
	{Code: "JC", Name: "BURSA"},
	{Code: "JD", Name: "EDIRNE"},
	{Code: "JE", Name: "ANTALYA"},
	{Code: "JF", Name: "KHOVD"},
	{Code: "JG", Name: "NEWYORK"},
	{Code: "JH", Name: "JHB"},
	{Code: "JI", Name: "JILIN"},
	{Code: "JJ", Name: "JEJU"},
	{Code: "JK", Name: "NOVGOROD"},
	{Code: "JL", Name: "TURKEY"},
	{Code: "JM", Name: "SUDAN"},
	{Code: "JN", Name: "AFGHANISTAN"},
	{Code: "JO", Name: "JOHANNESBURG"},
	{Code: "JP", Name: "JAPAN"},
	{Code: "JQ", Name: "NIGERIA"},
	{Code: "JR", Name: "KENTUCKY"},
	{Code: "JS", Name: "JIANGSU"},
	{Code: "JT", Name: "TALCAHUANO"},
	{Code: "JU", Name: "UTAH"},
	{Code: "JV", Name: "MASSACHUSETTS"},
	{Code: "JW", Name: "KANSAS"},
	{Code: "JX", Name: "JIANGXIDONGHU"},
	{Code: "JY", Name: "MONTANA"},
	{Code: "JZ", Name: "IOWA"},
	{Code: "KA", Name: "KASAULI"},
	{Code: "KB", Name: "KAGAWA"},
	{Code: "KC", Name: "KOCHI"},
	{Code: "KD", Name: "KANAGAWA"},
	{Code: "KE", Name: "KUMAMOTO-C"},
	{Code: "KF", Name: "KUM"},
	{Code: "KG", Name: "KAGOSHIMA"},
	{Code: "KH", Name: "KHABAROVSK"},
	{Code: "KI", Name: "KYONGGI"},
	{Code: "KJ", Name: "KWANGJU"},
	{Code: "KK", Name: "KYONGBUK"},
	{Code: "KL", Name: "KHON-KAEN"},
	{Code: "KM", Name: "KUMAMOTO"},
	{Code: "KN", Name: "KANGWON"},
	{Code: "KO", Name: "KOBE"},
	{Code: "KP", Name: "NAKHON-PATHOM"},
	{Code: "KQ", Name: "KAMPHAENG-PHET"},
	{Code: "KR", Name: "KOREA"},
	{Code: "KS", Name: "KAWASAKI"},
	{Code: "KT", Name: "KYOTO-C"},
	{Code: "KU", Name: "KITAKYUSYU"},
	{Code: "KV", Name: "KANCHANABURI"},
	{Code: "KW", Name: "KWANGJIN"},
	{Code: "KX", Name: "KYUNGNAM"},
	{Code: "KY", Name: "KITAKYUSHU"},
	{Code: "KZ", Name: "KYONGNAM"},
	{Code: "LA", Name: "LAUSANNE"},
	{Code: "LB", Name: "LOPBURI"},
	{Code: "LC", Name: "LOP-BURI"},
	{Code: "LD", Name: "LYON-TRS"},
	{Code: "LE", Name: "LENINGRAD"},
	{Code: "LF", Name: "LOBBURI"},
	{Code: "LG", Name: "LIAONING"},
	{Code: "LH", Name: "LYON-CHU"},
	{Code: "LI", Name: "LINNKOPING"},
	{Code: "LJ", Name: "LAMPANG"},
	{Code: "LK", Name: "LAMOANG"},
	{Code: "LL", Name: "CASTILLA"},
	{Code: "LM", Name: "LIMOGES"},
	{Code: "LN", Name: "LEON"},
	{Code: "LO", Name: "LOSANGELES"},
	{Code: "LP", Name: "LIPETZK"},
	{Code: "LQ", Name: "LOEI"},
	{Code: "LR", Name: "LA-REUNION"},
	{Code: "LS", Name: "LISBON"},
	{Code: "LT", Name: "LATVIA"},
	{Code: "LU", Name: "LOUISIANA"},
	{Code: "LV", Name: "SLOVENIA"},
	{Code: "LW", Name: "SCHLESWIG-HOLSTEIN"},
	{Code: "LX", Name: "LEICESTERSHIRE"},
	{Code: "LY", Name: "LYON"},
	{Code: "LZ", Name: "LINCOLN"},
	{Code: "MA", Name: "MADRID"},
	{Code: "MB", Name: "MOROCCO"},
	{Code: "MC", Name: "MICHIGAN"},
	{Code: "MD", Name: "MAD"},
	{Code: "ME", Name: "MEMPHIS"},
	{Code: "MF", Name: "CLERMONTFERRAND"},
	{Code: "MG", Name: "MIYAGI"},
	{Code: "MH", Name: "MAE-HONG-SORN"},
	{Code: "MI", Name: "MISSISSIPPI"},
	{Code: "MJ", Name: "MIE"},
	{Code: "MK", Name: "MIYAZAKI"},
	{Code: "ML", Name: "MALY"},
	{Code: "MM", Name: "MALMO"},
	{Code: "MN", Name: "MAE-HONG-SON"},
	{Code: "MO", Name: "MISSOURI"},
	{Code: "MP", Name: "MONTPELLIER"},
	{Code: "MQ", Name: "MACAU"},
	{Code: "MR", Name: "MADAGASCAR"},
	{Code: "MS", Name: "MINNESOTA"},
	{Code: "MT", Name: "SAMUT-SAKHON"},
	{Code: "MU", Name: "SAMUT-PRAKAN"},
	{Code: "MV", Name: "MONGOLIA"},
	{Code: "MW", Name: "MOSCOW"},
	{Code: "MX", Name: "MEXICO"},
	{Code: "MY", Name: "MAYOCLINIC"},
	{Code: "MZ", Name: "MASSACHUSETS"},
	{Code: "NA", Name: "NANCHANG"},
	{Code: "NB", Name: "NEBRASKA"},
	{Code: "NC", Name: "NEWCASTLE"},
	{Code: "ND", Name: "NORTH-DAKOTA"},
	{Code: "NE", Name: "NICE"},
	{Code: "NF", Name: "NRW"},
	{Code: "NG", Name: "NIIGATA"},
	{Code: "NH", Name: "NARA"},
	{Code: "NI", Name: "NIJMEGEN"},
	{Code: "NJ", Name: "NEW-JERSEY"},
	{Code: "NK", Name: "NAGANO"},
	{Code: "NL", Name: "NETHERLANDS"},
	{Code: "NM", Name: "NAGOYA"},
	{Code: "NN", Name: "NINGBO"},
	{Code: "NO", Name: "NORTH-CAROLINA"},
	{Code: "NP", Name: "NIGATA"},
	{Code: "NQ", Name: "NAPAL"},
	{Code: "NR", Name: "NOVOSIBIRSK"},
	{Code: "NS", Name: "NAGASAKI"},
	{Code: "NT", Name: "NIIGATA-C"},
	{Code: "NU", Name: "NONTHABURI"},
	{Code: "NV", Name: "NEVADA"},
	{Code: "NW", Name: "NEW-CALEDONIA"},
	{Code: "NX", Name: "NINGXIA"},
	{Code: "NY", Name: "NEW-YORK"},
	{Code: "NZ", Name: "NAKHON-RATCHASIMA"},
	{Code: "OA", Name: "OSAKA-C"},
	{Code: "OB", Name: "NOVY-BYDZOV"},
	{Code: "OC", Name: "OTAGA"},
	{Code: "OD", Name: "NORDRHEIN"},
	{Code: "OE", Name: "ORENSE"},
	{Code: "OF", Name: "OREL"},
	{Code: "OG", Name: "OREGON"},
	{Code: "OH", Name: "OHIO"},
	{Code: "OI", Name: "OITA"},
	{Code: "OJ", Name: "BOLIVIA"},
	{Code: "OK", Name: "OKLAHOMA"},
	{Code: "OL", Name: "CHOIBALSAN"},
	{Code: "OM", Name: "OMSK"},
	{Code: "ON", Name: "OKINAWA"},
	{Code: "OO", Name: "NAKONNAYOK"},
	{Code: "OP", Name: "GUADELOUPE"},
	{Code: "OQ", Name: "CHONGQING"},
	{Code: "OR", Name: "ORADEA"},
	{Code: "OS", Name: "OSLO"},
	{Code: "OT", Name: "OTAGO"},
	{Code: "OU", Name: "OUJDA"},
	{Code: "OV", Name: "OVIEDO"},
	{Code: "OW", Name: "NORWAY"},
	{Code: "OX", Name: "MAINE"},
	{Code: "OY", Name: "OKAYAMA"},
	{Code: "OZ", Name: "RUSSIA"},
	{Code: "PA", Name: "PARIS"},
	{Code: "PB", Name: "PARMA"},
	{Code: "PC", Name: "PORT-CHALMERS"},
	{Code: "PD", Name: "POLAND"},
	{Code: "PE", Name: "PERTH"},
	{Code: "PF", Name: "PHATTHALUNG"},
	{Code: "PG", Name: "PERUGIA"},
	{Code: "PH", Name: "PHILIPPINES"},
	{Code: "PI", Name: "POITIERS"},
	{Code: "PJ", Name: "PRAJIANBURI"},
	{Code: "PK", Name: "PHUKET"},
	{Code: "PL", Name: "PILSEN"},
	{Code: "PM", Name: "PANAMA"},
	{Code: "PN", Name: "PUSAN"},
	{Code: "PO", Name: "PUERTO-RICO"},
	{Code: "PP", Name: "PRACHUAP-KHIRI-KHAN"},
	{Code: "PQ", Name: "PATHUMTHANI"},
	{Code: "PR", Name: "PRAGUE"},
	{Code: "PS", Name: "PENNSYLVANIA"},
	{Code: "PT", Name: "PATHUM-THANI"},
	{Code: "PU", Name: "PERU"},
	{Code: "PV", Name: "PHILLIPINES"},
	{Code: "PW", Name: "PRACHINBURI"},
	{Code: "PX", Name: "PHETCHABUN"},
	{Code: "PY", Name: "PARAGUAY"},
	{Code: "PZ", Name: "PRABCHINBURI"},
	{Code: "QA", Name: "QUANZHOU"},
	{Code: "QB", Name: "BANGLADESH"},
	{Code: "QC", Name: "CORDOBA"},
	{Code: "QD", Name: "ARKANSAS"},
	{Code: "QE", Name: "MARTINIQUE"},
	{Code: "QF", Name: "COLOMBIA"},
	{Code: "QG", Name: "JAMAICA"},
	{Code: "QH", Name: "POL"},
	{Code: "QI", Name: "KIEV"},
	{Code: "QJ", Name: "ODESSA"},
	{Code: "QK", Name: "PALENCIA"},
	{Code: "QL", Name: "NOUACKCHOTT"},
	{Code: "QM", Name: "HESSEN"},
	{Code: "QN", Name: "GERONA"},
	{Code: "QO", Name: "MAURITIUS"},
	{Code: "QP", Name: "FUKUOKAC"},
	{Code: "QQ", Name: "CONGQING"},
	{Code: "QR", Name: "GIFUC"},
	{Code: "QS", Name: "HIROSHIMAC"},
	{Code: "QT", Name: "QINGDAO"},
	{Code: "QU", Name: "QUEENSLAND"},
	{Code: "QV", Name: "KUMAMOTOC"},
	{Code: "QW", Name: "NIIGATAC"},
	{Code: "QX", Name: "SENDAIH"},
	{Code: "QY", Name: "MARSEILLE"},
	{Code: "QZ", Name: "BORDEAUX"},
	{Code: "RA", Name: "ROME"},
	{Code: "RB", Name: "ROI-ET"},
	{Code: "RC", Name: "PRACHINMURI"},
	{Code: "RD", Name: "ROTTERDAM"},
	{Code: "RE", Name: "REUNION"},
	{Code: "RF", Name: "RABAT"},
	{Code: "RG", Name: "ARAGON"},
	{Code: "RH", Name: "RHEINLAND-PFALZ"},
	{Code: "RI", Name: "SORIA"},
	{Code: "RJ", Name: "RIO-DE-JANEIRO"},
	{Code: "RK", Name: "SAMUTPRAKHAN"},
	{Code: "RL", Name: "BRATISLAVA"},
	{Code: "RM", Name: "ROMANIA"},
	{Code: "RN", Name: "SURIN"},
	{Code: "RO", Name: "ROMA"},
	{Code: "RP", Name: "PRACHUAPKHIRIKHAN"},
	{Code: "RQ", Name: "ROSTOV-ON-DON"},
	{Code: "RR", Name: "SARABURI"},
	{Code: "RS", Name: "BURGOS"},
	{Code: "RT", Name: "RATCHABURI"},
	{Code: "RU", Name: "RU"},
	{Code: "RV", Name: "ARVAIKHEER"},
	{Code: "RW", Name: "NARATHIWAT"},
	{Code: "RX", Name: "ROSTOVDON"},
	{Code: "RY", Name: "KRASNOYARSK"},
	{Code: "RZ", Name: "TRABZON"},
	{Code: "SA", Name: "SOUTH-AUSTRALIA"},
	{Code: "SB", Name: "SAGA"},
	{Code: "SC", Name: "SOUTH-CAROLINA"},
	{Code: "SD", Name: "SHANGDONG"},
	{Code: "SE", Name: "SENDAI"},
	{Code: "SF", Name: "SOFIA"},
	{Code: "SG", Name: "SHIGA"},
	{Code: "SH", Name: "SHANGHAI"},
	{Code: "SI", Name: "SICHUAN"},
	{Code: "SJ", Name: "SPAIN"},
	{Code: "SK", Name: "ST.-ETIENNE"},
	{Code: "SL", Name: "SCOTLAND"},
	{Code: "SM", Name: "SAMARA"},
	{Code: "SN", Name: "ST-ETIENNE"},
	{Code: "SO", Name: "SOUTH-DAKOTA"},
	{Code: "SP", Name: "SINGAPORE"},
	{Code: "SQ", Name: "SACHSEN-ANHALT"},
	{Code: "SR", Name: "SAPPORO"},
	{Code: "SS", Name: "ST.-PETERSBURG"},
	{Code: "ST", Name: "STOCKHOLM"},
	{Code: "SU", Name: "SEOUL"},
	{Code: "SV", Name: "SHANTOU"},
	{Code: "SW", Name: "SW"},
	{Code: "SX", Name: "SOPHIA"},
	{Code: "SY", Name: "SYDNEY"},
	{Code: "SZ", Name: "SANTIAGO"},
	{Code: "TA", Name: "TAIWAN"},
	{Code: "TB", Name: "THURINGEN"},
	{Code: "TC", Name: "TOCHIGI"},
	{Code: "TD", Name: "TRENTO"},
	{Code: "TE", Name: "TEXAS"},
	{Code: "TF", Name: "TARRAGONA"},
	{Code: "TG", Name: "TONGA"},
	{Code: "TH", Name: "THESSALONIKI"},
	{Code: "TI", Name: "TILBURG"},
	{Code: "TJ", Name: "TIANJIN"},
	{Code: "TK", Name: "TAK"},
	{Code: "TL", Name: "THAILAND"},
	{Code: "TM", Name: "TASMANIA"},
	{Code: "TN", Name: "TOULON"},
	{Code: "TO", Name: "TOULOUSE"},
	{Code: "TP", Name: "TOYAMA"},
	{Code: "TQ", Name: "TOKUSHIMA"},
	{Code: "TR", Name: "TEHRAN"},
	{Code: "TS", Name: "TRIESTE"},
	{Code: "TT", Name: "TOTTORI"},
	{Code: "TU", Name: "TULA"},
	{Code: "TV", Name: "TOWNSVILLE"},
	{Code: "TW", Name: "TENNESSEE"},
	{Code: "TX", Name: "TX"},
	{Code: "TY", Name: "TOKYO"},
	{Code: "TZ", Name: "TANGER"},
	{Code: "UA", Name: "U.K."},
	{Code: "UB", Name: "UTTARADIT"},
	{Code: "UC", Name: "UD"},
	{Code: "UD", Name: "UDORN"},
	{Code: "UE", Name: "UBON-RATCHATHANI"},
	{Code: "UF", Name: "UBONRATCHATHANI"},
	{Code: "UG", Name: "URUAGUAY"},
	{Code: "UH", Name: "SUPHANBURI"},
	{Code: "UI", Name: "UNITED-KINGDOM"},
	{Code: "UJ", Name: "UTHAI-THANI"},
	{Code: "UK", Name: "UK"},
	{Code: "UL", Name: "ULSAN"},
	{Code: "UM", Name: "UMEA"},
	{Code: "UN", Name: "UNITEDKINGDOM"},
	{Code: "UO", Name: "SUKHOTHAI"},
	{Code: "UP", Name: "SAMUTPRAKAN"},
	{Code: "UQ", Name: "UMEA"},
	{Code: "UR", Name: "URUGUAY"},
	{Code: "US", Name: "USSR/RUSSIA"},
	{Code: "UT", Name: "UTRECHT"},
	{Code: "UU", Name: "ULAN-UDE"},
	{Code: "UV", Name: "SUCEAVA"},
	{Code: "UW", Name: "ULAANBAATAR"},
	{Code: "UX", Name: "BENELUX"},
	{Code: "UY", Name: "GUYANE"},
	{Code: "UZ", Name: "UKRAINE"},
	{Code: "VA", Name: "VALENCIA"},
	{Code: "VB", Name: "VINA-DEL-MAR"},
	{Code: "VC", Name: "COSTARICA"},
	{Code: "VD", Name: "VALLADOLID"},
	{Code: "VE", Name: "VIETNAM"},
	{Code: "VF", Name: "COOK-ISLAND"},
	{Code: "VG", Name: "VIRGINIA"},
	{Code: "VH", Name: "JEONBUK"},
	{Code: "VI", Name: "VICTORIA"},
	{Code: "VJ", Name: "GUATEMALA"},
	{Code: "VK", Name: "SLOVAKIA"},
	{Code: "VL", Name: "VOLGOGRAD"},
	{Code: "VM", Name: "VLADIMIR"},
	{Code: "VN", Name: "VIENNA"},
	{Code: "VO", Name: "VORONEZH"},
	{Code: "VP", Name: "KENYA"},
	{Code: "VQ", Name: "SING"},
	{Code: "VR", Name: "STAVROPOL"},
	{Code: "VT", Name: "VERMONT"},
	{Code: "VV", Name: "AVILA"},
	{Code: "VY", Name: "IVORY-COAST"},
	{Code: "VZ", Name: "VENEZUELA"},
	{Code: "WA", Name: "WASHINGTON"},
	{Code: "WB", Name: "WY--"},
	{Code: "WE", Name: "WELLINGTON"},
	{Code: "WG", Name: "GWANGJU"},
	{Code: "WH", Name: "WUZHOU"},
	{Code: "WK", Name: "WAIKATO"},
	{Code: "WM", Name: "WAKAYAMA"},
	{Code: "WN", Name: "WISCONSIN"},
	{Code: "WO", Name: "GANGWON"},
	{Code: "WR", Name: "WARSAW"},
	{Code: "WS", Name: "WEST-VIRGINIA"},
	{Code: "WU", Name: "WUHAN"},
	{Code: "WV", Name: "WESTVIRGINIA"},
	{Code: "WW", Name: "NEWMARKET"},
	{Code: "WX", Name: "NEW-MEXICO"},
	{Code: "WY", Name: "WYOMING"},
	{Code: "WZ", Name: "SWITZERLAND"},
	{Code: "XI", Name: "XINJIANGCHANGJI"},
	{Code: "XJ", Name: "XINJIANG-HUTUBI"},
	{Code: "XM", Name: "XIAMEN"},
	{Code: "XN", Name: "XINJIANGHUTUBI"},
	{Code: "XX", Name: "CX-ROUSSE"},
	{Code: "YA", Name: "YAMAGA"},
	{Code: "YB", Name: "YUNAN"},
	{Code: "YD", Name: "BYDGOSZCZ"},
	{Code: "YE", Name: "GYEONGNAM"},
	{Code: "YG", Name: "YAMAGUCHI"},
	{Code: "YI", Name: "YAMANESHI"},
	{Code: "YK", Name: "YOKOSUKA"},
	{Code: "YL", Name: "MARYLAND"},
	{Code: "YM", Name: "YAMANASHI"},
	{Code: "YN", Name: "KYUNGBUK"},
	{Code: "YO", Name: "YOKOHAMA"},
	{Code: "YR", Name: "YARYSLAVL"},
	{Code: "YS", Name: "YAROSLAVL"},
	{Code: "YT", Name: "YAMAGATA"},
	{Code: "YU", Name: "YUNNAN"},
	{Code: "YY", Name: "NAKHONNAYOK"},
	{Code: "YZ", Name: "YUNGNAM"},
	{Code: "ZA", Name: "ZAMBIA"},
	{Code: "ZB", Name: "AZERBAIJAN"},
	{Code: "ZE", Name: "ZAGREB"},
	{Code: "ZG", Name: "ZARAGOSSA"},
	{Code: "ZH", Name: "ZHEJIANG"},
	{Code: "ZI", Name: "IZMIR"},
	{Code: "ZL", Name: "ZLIN"},
	{Code: "ZM", Name: "ZAMORA"},
	{Code: "ZN", Name: "RYAZAN"},
	{Code: "ZR", Name: "ZARAGOZA"},
	{Code: "ZU", Name: "SHIZUOKAC"},
	{Code: "ZX", Name: "CHUNGBUK"},
	{Code: "ZY", Name: "SAITAMA"},
}
